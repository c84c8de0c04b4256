package leveltools

// RemapTextureID translates a tree-local texture id through the header's
// remap table. Ids without an entry pass through unchanged.
func RemapTextureID(remaps []TextureRemap, id uint32) uint32 {
	for _, remap := range remaps {
		if remap.OriginalID == id {
			return remap.NewID
		}
	}
	return id
}
