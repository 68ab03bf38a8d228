// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/huewheel/huewheel/cmd/huewheel"

func main() {
	cmd.Execute()
}
