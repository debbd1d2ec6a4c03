// Package hero renders hero-flex content blocks into gomponents node trees.
//
// Rendering is a pure mapping: each styling key is resolved against a fixed
// table with a default arm, media/background/shape layers are built from the
// block's nested entities, and one of three layouts (fullBleed, split, card)
// arranges the result inside a single <section>. Image URLs and rich text are
// delegated to imageurl.Builder and richtext.Renderer.
//
// Basic usage:
//
//	r := hero.New(hero.WithImageBuilder(imageurl.New(projectID, dataset)))
//	node := r.Render(block)
//	_ = node.Render(w)
package hero
