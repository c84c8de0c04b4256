// Package fr3gltf dumps packaged levels as glTF for eyeballing the
// conversion in a model viewer. Debug only, nothing reads these back.
package fr3gltf

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/jak_level_extractor/tfrag3"
	"github.com/mogaika/jak_level_extractor/utils"
)

func addDraws(doc *gltf.Document, namePrefix string, draws []tfrag3.Draw) {
	for iDraw, draw := range draws {
		if len(draw.Vertices) == 0 {
			continue
		}

		positions := make([][3]float32, len(draw.Vertices))
		copy(positions, draw.Vertices)
		positionAccessor := modeler.WritePosition(doc, positions)

		indices := make([]uint32, len(draw.Vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
		indicesAccessor := modeler.WriteIndices(doc, indices)

		meshIndex := uint32(len(doc.Meshes))
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: fmt.Sprintf("%s_%d_tex0x%x", namePrefix, iDraw, draw.TextureID),
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(indicesAccessor),
				Attributes: map[string]uint32{
					"POSITION": positionAccessor,
				},
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: fmt.Sprintf("%s_%d", namePrefix, iDraw),
			Mesh: gltf.Index(meshIndex),
		})
	}
}

func saveDocument(doc *gltf.Document, fpath string) error {
	for iNode := range doc.Nodes {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(iNode))
	}
	if err := utils.CreateDirIfNeededForFile(fpath); err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, fpath); err != nil {
		return errors.Wrapf(err, "Unable to save gltf %q", fpath)
	}
	return nil
}

// SaveLevelBackgroundAsGLTF dumps the level's world geometry (tfrag,
// tie, shrub, collide).
func SaveLevelBackgroundAsGLTF(lev *tfrag3.Level, fpath string) error {
	doc := gltf.NewDocument()
	for _, tree := range lev.TfragTrees {
		addDraws(doc, tree.Name, tree.Draws)
	}
	for _, tree := range lev.TieTrees {
		addDraws(doc, tree.Name, tree.Draws)
	}
	for _, tree := range lev.ShrubTrees {
		addDraws(doc, tree.Name, tree.Draws)
	}
	return saveDocument(doc, fpath)
}

// SaveLevelForegroundAsGLTF dumps the level's articulated models.
func SaveLevelForegroundAsGLTF(lev *tfrag3.Level, fpath string) error {
	doc := gltf.NewDocument()
	for _, model := range lev.MercModels {
		addDraws(doc, model.Name, model.Draws)
	}
	return saveDocument(doc, fpath)
}
