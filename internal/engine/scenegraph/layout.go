package scenegraph

import (
	stdmath "math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/porta-cabine/pkg/math"
)

// Node names exported by the door and cabin assets.
const (
	DoorNode = "porta"

	Book1Node       = "Empty_Livro1_Pivo"
	Book2CoverNode  = "Empty_livro_2_Pivo"
	RibbonNode      = "Empty_livro_2_fita_1_Pivo"
	RibbonTailNode  = "Empty_livro_2_fita_2_Pivo"
	ArtefactNode    = "Empty_artefato_dourado_ponteiro_Pivo"
	Gauge1Node      = "Empty_medidor_1_Pivo"
	Gauge2Node      = "Empty_medidor_2_Pivo"
	GlobeNode       = "Empty_globo_esfera_Pivo"
	Lever1Node      = "Empty_alavanca_1"
	Lever2Node      = "Empty_alavanca_2"
	ArrowRightNode  = "seta_direita"
	ArrowLeftNode   = "seta_esquerda"
	HologramNode    = "teste"
	ScreenMaterial  = "tela_principal"
	LanternMaterial = "luz_lampiao"
)

// CabinLights lists the blinking indicator nodes of the cabin asset.
var CabinLights = []string{
	"luz", "luz001", "luz002", "luz003", "luz004",
	"luz005", "luz006", "luz007", "luz008",
}

// Door builds the handle set of the door asset, with the camera at its rest
// pose.
func Door() *Graph {
	g := New("door")
	g.AddNode(DoorNode, math.V3(-2.919, 3.18, 0.381), math.Vec3{})
	g.AddMaterial(LanternMaterial, colorful.Color{R: 1, G: 0.667, B: 0}, 3)
	// The pivot is the hinge; the leaf swings out toward +x.
	g.AddHitBox(DoorNode, math.V3(-2.919, 0, 0), math.V3(0.081, 6.36, 0.762))
	g.camera.position = math.V3(0, 5, 50)
	g.camera.lookAt = math.V3(0, 5, 0)
	return g
}

// Cabin builds the handle set of the cabin asset. Fixture pivots sit at
// their parent's origin.
func Cabin() *Graph {
	g := New("cabin")
	for _, name := range []string{
		Book1Node, Book2CoverNode, RibbonNode, RibbonTailNode,
		ArtefactNode, Gauge1Node, Gauge2Node, GlobeNode,
		Lever1Node, Lever2Node, ArrowRightNode, ArrowLeftNode,
	} {
		g.AddNode(name, math.Vec3{}, math.Vec3{})
	}
	g.AddNode(HologramNode, math.V3(-0.122, 6.137, -5.516), math.V3(stdmath.Pi/2, 0, 0))
	g.AddMaterial(ScreenMaterial, colorful.Color{R: 0, G: 0.02, B: 0.063}, 0)
	for _, name := range CabinLights {
		g.AddMaterial(name, colorful.Color{}, 0)
		g.AddLight(name, colorful.Color{}, 0)
	}
	g.camera.position = math.V3(0, 1.8, 45)
	g.camera.lookAt = math.V3(0, 5, 0)
	return g
}
