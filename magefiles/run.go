//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders the built-in demo scene to output/.
func (Run) Demo() error {
	fmt.Println("Rendering demo scene...")
	if _, err := executeCmd("go", withArgs("run", ".", "-verbose"), withStream()); err != nil {
		return err
	}
	return nil
}
