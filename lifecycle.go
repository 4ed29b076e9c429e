package imgbridge

import "go.uber.org/zap"

// FreeHandle releases an image handle. Freeing the zero sentinel is a
// safe no-op; freeing an already-freed or never-issued handle is detected
// and reported as InvalidPointer.
func FreeHandle(h Handle) Code {
	if h == 0 {
		return Success
	}
	if _, ok := images.Take(h); !ok {
		Logger().Debug("free of dead image handle", zap.Uint64("handle", uint64(h)))
		return InvalidPointer
	}
	return Success
}

// FreeBuffer releases a transferred buffer. The caller must return
// exactly the token and length handed out by Encode; a mismatched length
// is reported without releasing anything. Freeing the zero sentinel is a
// safe no-op.
func FreeBuffer(token Handle, length uint64) Code {
	if token == 0 {
		return Success
	}
	data, ok := buffers.Get(token)
	if !ok || uint64(len(data)) != length {
		Logger().Debug("buffer release rejected",
			zap.Uint64("token", uint64(token)),
			zap.Uint64("length", length))
		return InvalidPointer
	}
	buffers.Take(token)
	return Success
}

// FreeString releases an owned string. Freeing the zero sentinel is a
// safe no-op.
func FreeString(token Handle) Code {
	if token == 0 {
		return Success
	}
	if _, ok := strs.Take(token); !ok {
		return InvalidPointer
	}
	return Success
}

// BufferBytes borrows the contents of a transferred buffer for a binding
// layer to copy out or expose. The buffer stays owned by the caller of
// Encode; this accessor does not release it.
func BufferBytes(token Handle) ([]byte, Code) {
	data, ok := buffers.Get(token)
	if !ok {
		return nil, InvalidPointer
	}
	return data, Success
}

// StringData borrows the contents of an owned string.
func StringData(token Handle) (string, Code) {
	s, ok := strs.Get(token)
	if !ok {
		return "", InvalidPointer
	}
	return s, Success
}
