package models

// CraftIdea is a reuse suggestion for a recyclable material.
type CraftIdea struct {
	Name      string   `json:"name"`
	Thumbnail string   `json:"thumbnail"`
	Steps     []string `json:"steps"`
}

// CraftIdeasByCategory maps a material category to its craft suggestions.
var CraftIdeasByCategory = map[string][]CraftIdea{
	"paper": {
		{
			Name:      "Origami Flowers",
			Thumbnail: "/assets/crafts/origami-flowers.jpg",
			Steps: []string{
				"Start with a square piece of paper.",
				"Fold the paper diagonally to form a triangle.",
				"Fold the corners of the triangle to the center.",
				"Repeat the process to create multiple petals.",
				"Gently unfold the petals to form a flower shape.",
			},
		},
		{
			Name:      "Paper Mache Bowls",
			Thumbnail: "/assets/crafts/paper-mache-bowls.jpg",
			Steps: []string{
				"Tear newspaper into small strips.",
				"Mix glue and water to create a paste.",
				"Dip the strips into the paste and layer them over a bowl.",
				"Let it dry completely.",
				"Paint and decorate the bowl as desired.",
			},
		},
	},
	"plastic": {
		{
			Name:      "Bottle Planters",
			Thumbnail: "/assets/crafts/bottle-planters.jpg",
			Steps: []string{
				"Cut a plastic bottle in half.",
				"Paint the outside of the bottle.",
				"Add drainage holes at the bottom.",
				"Fill with soil and plant your seeds.",
				"Water regularly and watch your plants grow!",
			},
		},
		{
			Name:      "Plastic Bead Bracelets",
			Thumbnail: "/assets/crafts/bead-bracelets.jpg",
			Steps: []string{
				"Cut plastic bottles into small pieces.",
				"Heat the pieces to form beads.",
				"Paint the beads in your favorite colors.",
				"Thread the beads onto a string or elastic.",
				"Tie the ends to complete the bracelet.",
			},
		},
	},
	"glass": {
		{
			Name:      "Painted Glass Bottles",
			Thumbnail: "/assets/crafts/painted-bottles.jpg",
			Steps: []string{
				"Clean the bottle and remove its label.",
				"Apply a base coat of glass paint.",
				"Add patterns or designs with a fine brush.",
				"Let the paint cure.",
				"Use as a vase or decoration.",
			},
		},
	},
	"fabric": {
		{
			Name:      "DIY Tote Bags",
			Thumbnail: "/assets/crafts/tote-bags.jpg",
			Steps: []string{
				"Cut two rectangular pieces of fabric.",
				"Sew the sides and bottom together.",
				"Fold the top edge and sew to create a hem.",
				"Attach handles to the top.",
				"Decorate with fabric paint or patches.",
			},
		},
	},
	"wood": {
		{
			Name:      "Wooden Pallet Shelves",
			Thumbnail: "/assets/crafts/pallet-shelves.jpg",
			Steps: []string{
				"Disassemble a wooden pallet.",
				"Sand the wood to smooth the surface.",
				"Cut the wood into shelf sizes.",
				"Assemble and paint the shelves.",
				"Mount the shelves on the wall.",
			},
		},
	},
}
