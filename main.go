// SPDX-License-Identifier: MPL-2.0

package main

import cmd "preflight/cmd/preflight"

func main() {
	cmd.Execute()
}
