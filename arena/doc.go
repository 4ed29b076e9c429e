// Package arena provides the slot table backing boundary handles.
//
// Values crossing the boundary are never exposed by address. Instead the
// producing side stores the value in a Table and hands out a Handle, an
// opaque integer the foreign side cannot construct or inspect. The table
// is the sole owner of the value until the handle is explicitly taken
// back.
//
// # Lifecycle
//
//	table := arena.NewTable[image.Image]()
//
//	h := table.Put(img)        // create: ownership moves to the table
//	img, ok := table.Get(h)    // borrow: read access, handle stays valid
//	ok := table.Replace(h, v)  // mutate: same handle, new contents
//	img, ok := table.Take(h)   // destroy: ownership moves back out
//
// # Misuse detection
//
// Each slot carries a generation counter that is bumped when the slot is
// vacated. A freed handle therefore stops resolving even after its slot
// is reused, which turns double-free and use-after-free from undefined
// behavior into a reported lookup failure.
package arena
