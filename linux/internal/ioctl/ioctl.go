//go:build linux

// Package ioctl implements the subset of the Linux ioctl request-code
// encoding ([ioctl.h]) that the evdev backend needs: building _IOR/_IOW
// request codes and issuing them through a generic syscall wrapper.
//
// From [ioctl.h]:
//
// ioctl command encoding: 32 bits total, command in lower 16 bits,
// size of the parameter structure in the lower 14 bits of the
// upper 16 bits. The highest 2 bits indicate the access mode.
//
// [ioctl.h]: https://github.com/torvalds/linux/blob/master/include/uapi/asm-generic/ioctl.h
package ioctl

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	dirBits  = 8
	typeBits = 8
	sizeBits = 14

	typeShift = dirBits
	nrShift   = 0
	sizeShift = typeShift + typeBits
	dirShift  = sizeShift + sizeBits

	dirNone  = 0
	dirWrite = 1
	dirRead  = 2
)

func ioc(dir, typ, nr, size uint) uint {
	return dir<<dirShift | typ<<typeShift | nr<<nrShift | size<<sizeShift
}

// IOR returns an ioctl request code for reading data from the kernel.
// typ is the magic identifier, nr the command number, and argtype a
// zero value of the data type being transferred (only its size is used).
// argtype is generic rather than `any` so Sizeof sees the concrete type's
// layout instead of an interface header's.
func IOR[T any](typ, nr uint, argtype T) uint {
	return ioc(dirRead, typ, nr, uint(unsafe.Sizeof(argtype)))
}

// IOW returns an ioctl request code for writing data to the kernel.
func IOW[T any](typ, nr uint, argtype T) uint {
	return ioc(dirWrite, typ, nr, uint(unsafe.Sizeof(argtype)))
}

// IOC returns a request code for a transfer whose size is computed by the
// caller (used for variable-length string ioctls like EVIOCGNAME(len)).
func IOC(dir, typ, nr, size uint) uint {
	return ioc(dir, typ, nr, size)
}

// ReadDir is the access-mode value for a kernel-to-user transfer, for
// callers building variable-length request codes with [IOC].
const ReadDir = dirRead

// Any performs an ioctl system call on the given file descriptor. It wraps
// the raw SYS_IOCTL syscall, passing req as the ioctl request code. arg is a
// pointer to the value to read into or write from; a nil arg is valid for
// no-data ioctls. On failure the returned error is the underlying
// [syscall.Errno].
func Any[T any](fd uintptr, req uint, arg *T) error {
	var errno syscall.Errno

	_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), uintptr(unsafe.Pointer(arg)))
	if errno != 0 {
		return errno
	}

	return nil
}
