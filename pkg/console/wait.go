package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WaitForKey prompts on out and blocks until a key is pressed on in. A
// non-terminal in is read up to the next newline. EOF counts as a keypress.
func WaitForKey(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "\nPress any key to close...")

	var err error
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		err = readRawKey(f)
	} else {
		_, err = bufio.NewReader(in).ReadString('\n')
	}
	fmt.Fprintln(out)

	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func readRawKey(f *os.File) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		_, err = bufio.NewReader(f).ReadString('\n')
		return err
	}
	defer term.Restore(fd, state)

	buf := make([]byte, 1)
	_, err = f.Read(buf)
	return err
}
