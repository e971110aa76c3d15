// Package assets maps the image keys stored on menu rows to the bundled
// image files shipped with the app.
package assets

var itemImages = map[string]string{
	"greekSalad":   "images/Greek-Salad.png",
	"bruchetta":    "images/Bruchetta.png",
	"grilledFish":  "images/Grilled-Fish.png",
	"pasta":        "images/Pasta.png",
	"lemonDessert": "images/Lemon-Dessert.png",
}

// ImagePath returns the bundled file for key. A menu row whose key is missing
// here has no image; callers decide how to render that.
func ImagePath(key string) (string, bool) {
	p, ok := itemImages[key]
	return p, ok
}

// keys lists every bundled image key.
func keys() []string {
	keys := make([]string, 0, len(itemImages))
	for k := range itemImages {
		keys = append(keys, k)
	}
	return keys
}
