package ls

import "golang.org/x/sys/unix"

// permBits lists the POSIX permission bits in render order: owner, group,
// other, each read/write/execute.
var permBits = [9]uint32{
	unix.S_IRUSR, unix.S_IWUSR, unix.S_IXUSR,
	unix.S_IRGRP, unix.S_IWGRP, unix.S_IXGRP,
	unix.S_IROTH, unix.S_IWOTH, unix.S_IXOTH,
}

const permChars = "rwx"

// FormatMode renders raw stat mode bits as the fixed 10-character symbolic
// permission string: type character, then r/w/x (or -) for owner, group,
// and other. Pure bitwise tests, no locale dependence.
func FormatMode(mode uint32, isDir bool) string {
	var b [10]byte
	b[0] = '-'
	if isDir {
		b[0] = 'd'
	}
	for i, bit := range permBits {
		if mode&bit != 0 {
			b[i+1] = permChars[i%3]
		} else {
			b[i+1] = '-'
		}
	}
	return string(b[:])
}
