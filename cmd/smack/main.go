// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/smackpm/smack/internal/cli"

func main() {
	cli.Execute()
}
