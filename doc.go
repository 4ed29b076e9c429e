// Package imgbridge exposes image loading, encoding, querying, and
// transforms through a flat, binding-friendly call surface: opaque integer
// handles instead of pointers, closed status codes instead of errors, and
// an explicit release call for every resource handed out.
//
// # Ownership protocol
//
// Three rules govern every value crossing this surface:
//
//   - An image produced by a load or transform call is owned by the
//     library and identified by a Handle. The caller must eventually pass
//     the handle to FreeHandle; the library never invalidates it on its
//     own.
//   - Encoded bytes and owned strings transfer to the caller atomically
//     with the success return, as a token plus (for buffers) a length.
//     They are released exactly once via FreeBuffer or FreeString with the
//     same token and length that were handed out.
//   - Handle 0 is the sentinel for "no value". Handle-returning operations
//     signal failure by returning 0; status-returning operations signal it
//     with a non-Success Code and leave their other results zeroed.
//
// Handles live in a slot arena rather than being raw addresses, so a
// freed or never-issued handle is detected and reported as InvalidPointer
// (or a 0 result) instead of corrupting memory.
//
// # Concurrency
//
// Every call is synchronous and runs to completion. Calls on different
// handles are safe to make concurrently with no coordination. Calls
// sharing a handle are not synchronized against each other; in particular
// Invert requires exclusive access to its handle for the duration of the
// call, which is the caller's obligation.
package imgbridge
