// Package snapshot persists built function spaces.
//
// The SVD dominates construction cost, so a space is saved with its full
// singular vectors and restored without recomputing anything.
//
// Files are self-describing: a fixed header carries a magic number, format
// version and the payload codec's name, followed by a CRC32 checksum and
// the zstd-compressed codec payload. Opening a file validates all three
// before decoding.
//
//	f, _ := os.Create("space.fsp")
//	err := snapshot.Write(f, space.Snapshot())
//
//	snap, err := snapshot.Load("space.fsp")
//	space, err := funcspace.FromSnapshot(snap)
package snapshot
