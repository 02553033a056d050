package byml_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	core "github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/internal/testutil"
	"github.com/joshuapare/bymlkit/pkg/byml"
)

func ExampleReplaceInFile() {
	dir, _ := os.MkdirTemp("", "byml-example")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "Player.byml.zs")
	_ = byml.SaveBuffer(path, testutil.Build(testutil.Sample()))

	res, err := byml.ReplaceInFile(context.Background(), path, "Speed", core.FloatRaw(4), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range res.Matches {
		fmt.Printf("%s: %v -> %v\n", m.Path, m.Old.Float(), m.New.Float())
	}
	// Output:
	// Stats/Speed: 1.5 -> 4
	// World/Area/Boss/Speed: 9 -> 4
}
