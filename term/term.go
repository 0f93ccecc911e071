// Package term handles raw mode and byte-level reads for the host
// terminal.
package term

import (
	"io"
	"os"

	"golang.org/x/sys/unix"

	"parley/ansi"
)

// Terminal controls the tty the application runs on. It owns the saved
// termios state and restores it exactly when Leave is called.
type Terminal struct {
	in       *os.File
	out      *os.File
	fd       int
	original unix.Termios
	raw      bool
	idle     func()
}

// New creates a terminal controller for stdin/stdout.
func New() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	return &Terminal{in: os.Stdin, out: os.Stdout, fd: fd, original: *termios}, nil
}

// Enter switches to the alternate screen and puts the terminal into raw
// mode for direct character input.
func (t *Terminal) Enter() error {
	t.out.WriteString(ansi.SaveCursor + ansi.AltScreenEnter + ansi.Position(1, 1))
	raw := t.original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		t.out.WriteString(ansi.AltScreenExit + ansi.LoadCursor)
		return err
	}
	t.raw = true
	return nil
}

// Leave restores the original terminal mode and screen buffer.
func (t *Terminal) Leave() error {
	if !t.raw {
		return nil
	}
	t.raw = false
	err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.original)
	t.out.WriteString(ansi.AltScreenExit + ansi.LoadCursor)
	return err
}

// SetIdleFunc installs a callback invoked from ReadByte whenever a poll
// interval elapses without input. It runs on the reading goroutine,
// between key events, so it is safe for the callback to redraw.
func (t *Terminal) SetIdleFunc(fn func()) {
	t.idle = fn
}

// ReadByte blocks until a byte is available and returns it. Raw mode
// uses a polled read (VMIN=0, VTIME=1) so the idle callback can run
// between key events. Returns io.EOF when the input stream ends.
func (t *Terminal) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := t.in.Read(buf)
		if n > 0 {
			return buf[0], nil
		}
		if err != nil {
			return 0, io.EOF
		}
		if t.idle != nil {
			t.idle()
		}
	}
}

// TryReadByte performs a single non-blocking read. It never sleeps: if
// no byte is buffered it reports false immediately.
func (t *Terminal) TryReadByte() (byte, bool) {
	if err := unix.SetNonblock(t.fd, true); err != nil {
		return 0, false
	}
	defer unix.SetNonblock(t.fd, false)
	buf := make([]byte, 1)
	n, err := unix.Read(t.fd, buf)
	if err != nil || n != 1 {
		return 0, false
	}
	return buf[0], true
}

// Size returns the current terminal dimensions.
func (t *Terminal) Size() (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Write emits rendered output to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
