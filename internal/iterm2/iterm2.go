// Package iterm2 writes images inline to terminals implementing the
// iTerm2 image protocol.
package iterm2

import "encoding/base64"
import "image"
import "image/png"
import "io"
import "os"
import "strconv"

import "golang.org/x/term"

// Reports whether the current terminal is iTerm2. There's no
// reliable way to query protocol support, so we trust the
// TERM_PROGRAM variable.
func IsCompatible() bool {
	return os.Getenv("TERM_PROGRAM") == "iTerm.app"
}

// Reports whether the given file is a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// Returns the size of the terminal in character cells.
func CellSize(file *os.File) (columns, rows int, err error) {
	return term.GetSize(int(file.Fd()))
}

// Writes the image as an inline PNG escape sequence. The image is
// scaled by the terminal to the given width in cells, or shown at
// its native size if widthCells <= 0.
func Image(w io.Writer, img image.Image, widthCells int) error {
	header := "\x1b]1337;File=inline=1"
	if widthCells > 0 { header += ";width=" + strconv.Itoa(widthCells) }
	_, err := io.WriteString(w, header + ":")
	if err != nil { return err }

	encoder := base64.NewEncoder(base64.StdEncoding, w)
	err = png.Encode(encoder, img)
	if err != nil { return err }
	err = encoder.Close()
	if err != nil { return err }

	_, err = w.Write([]byte("\x07"))
	return err
}
