// Package collide extracts the collision fragment tree. Instanced static
// meshes contribute collision too, so the extractor receives every tie
// tree of the level and folds their geometry in with a default surface
// material.
package collide

import (
	"github.com/mogaika/jak_level_extractor/leveltools"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

// PAT_DEFAULT marks faces generated from tie geometry rather than read
// from the collide tree itself.
const PAT_DEFAULT = 0

func Extract(tree *leveltools.DrawableTreeCollideFragment,
	allTies []*leveltools.DrawableTreeInstanceTie,
	name string,
	out *tfrag3.Level) error {

	frags := tfrag3.CollideFragments{Name: name}

	for _, face := range tree.Faces {
		for _, vert := range face.Verts {
			frags.Vertices = append(frags.Vertices, [3]float32{vert[0], vert[1], vert[2]})
		}
		frags.Pats = append(frags.Pats, face.PatMaterial)
	}

	for _, tie := range allTies {
		for _, frag := range tie.Fragments {
			for iVert := 0; iVert+2 < len(frag.Vertices); iVert += 3 {
				for _, vert := range frag.Vertices[iVert : iVert+3] {
					frags.Vertices = append(frags.Vertices, [3]float32{vert[0], vert[1], vert[2]})
				}
				frags.Pats = append(frags.Pats, PAT_DEFAULT)
			}
		}
	}

	out.CollideFragments = append(out.CollideFragments, frags)
	return nil
}
