package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const banner = `               _     _
 ___ __ _ _  _(_)___| |_
(_-</ _' | || | (_-</ ' \
/__/\__, |\_,_|_/__/|_||_|
       |_|`

// printBanner writes the startup banner unless suppressed by flag or by
// a non-interactive stdout.
func printBanner(ctx *commandContext, out io.Writer) {
	if ctx.noBannerFlag != nil && *ctx.noBannerFlag {
		return
	}
	file, ok := out.(*os.File)
	if !ok {
		return
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return
	}
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "squish - video compression for the 25MB age")
	fmt.Fprintln(out)
}

// stderrIsTerminal gates the live progress bar.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
