package theme

import (
	"fmt"
)

// Banner returns the CLI banner.
func Banner() string {
	const cyan = "\033[36m"
	const magenta = "\033[35m"
	const reset = "\033[0m"

	art := "" +
		"  @ ─── " + magenta + "MENTIONGRAPH" + reset + " ─── @\n" +
		cyan + "     (alice) ──▶ (bob)\n" + reset +
		cyan + "        └──────▶ (charlie) ◀── (dave)\n" + reset +
		"   who follows whom, inferred from @-mentions\n"
	return art
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}
