// Package main provides the CLI entrypoint for tydump.
//
// tydump is a small demo that:
//   - Builds Ty/LTy handles for a few sample types
//   - Shows pretty names next to identity variants and layouts
//   - Erases values behind AnyDebug and dumps them back
package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/purpleposeidon/ezty"
	"github.com/purpleposeidon/ezty/anydebug"
	"github.com/purpleposeidon/ezty/collections"
)

func main() {
	handles := []ezty.LTy{
		ezty.LTyOf[int32](),
		ezty.LTyOf[[]byte](),
		ezty.LTyOf[map[string]int](),
		ezty.LTyOf[collections.Vec[int32]](),
		ezty.LTyOf[collections.Pair[string, int]](),
		ezty.LTyOfEvery[collections.Vec[collections.Vec[uint8]]](),
	}

	for _, h := range handles {
		fmt.Printf("%-30s variant=%-14s size=%-3d align=%d\n",
			h.Name(), h.ID().Variant(), h.Layout().Size, h.Layout().Align)
	}

	vec := collections.NewVec[int32](1, 2, 3)
	erased := map[string]anydebug.Value{
		"answer": anydebug.Erase(42),
		"vec":    anydebug.Erase(vec),
	}

	for key, val := range erased {
		fmt.Printf("%s: %s = %v\n", key, val.TypeName(), val)
	}

	back, err := anydebug.Downcast[collections.Vec[int32]](erased["vec"])
	if err != nil {
		fmt.Println("downcast failed:", err)

		return
	}

	spew.Dump(back.Items())
}
