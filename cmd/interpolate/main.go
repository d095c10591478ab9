// SPDX-License-Identifier: MIT

// Command interpolate runs polynomial interpolation jobs from flags or a
// configuration file.
package main

import (
	"fmt"
	"os"

	"k8s.io/klog"

	"github.com/katalvlaran/lvinterp/cli"
)

func main() {
	defer klog.Flush()

	cmd := cli.NewCmdInterpolate(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		klog.Flush()
		os.Exit(1)
	}
}
