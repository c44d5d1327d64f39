package ucp

// Enumerate walks the module chain of a located container slice,
// starting at the given offset (immediately after the 16-byte container
// header). Traversal is strictly sequential: each module's declared
// size is the distance to the next module's header. It stops at the end
// of the buffer, at the first byte that is not the '@' signature byte,
// or at a header that no longer fits; a short or zero-sized header
// truncates traversal rather than failing it.
//
// If a @NAL name-list module is present anywhere in the chain it is
// moved to index 1, directly after the first module, so the naming
// dictionary can be built before any later module is named.
func Enumerate(buf []byte, off int) []Module {
	var mods []Module

	for off >= 0 && off < len(buf) && buf[off] == signatureByte {
		hdr, err := decodeModuleHeader(buf, off)
		if err != nil {
			break
		}

		mods = append(mods, Module{Tag: hdr.TagString(), Offset: off, Header: hdr})

		if hdr.Size == 0 {
			break
		}
		next := off + int(hdr.Size)
		if next <= off {
			break
		}
		off = next
	}

	for i, m := range mods {
		if m.Tag != TagNameList || i == 1 {
			continue
		}
		if i == 0 && len(mods) > 1 {
			mods[0], mods[1] = mods[1], mods[0]
		} else if i > 1 {
			mods = append(mods[:i], mods[i+1:]...)
			rest := append([]Module{m}, mods[1:]...)
			mods = append(mods[:1], rest...)
		}
		break
	}

	return mods
}
