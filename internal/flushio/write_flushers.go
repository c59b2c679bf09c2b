package flushio

import "io"

// Tee combines any number of WriteFlusher-s into a single one that writes
// into and flushes all of them. Nil writers are skipped, and nested tees are
// flattened. Every write and flush reaches every writer, even after one of
// them fails; the first failure is returned.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			all = append(all, impl...)
		default:
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	var err error
	for _, wf := range t {
		n, werr := wf.Write(p)
		if werr == nil && n != len(p) {
			werr = io.ErrShortWrite
		}
		if err == nil {
			err = werr
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t tee) WriteByte(b byte) (err error) {
	for _, wf := range t {
		if werr := WriteByte(wf, b); err == nil {
			err = werr
		}
	}
	return err
}

func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
