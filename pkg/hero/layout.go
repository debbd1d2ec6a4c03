package hero

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// layout carries the resolved pieces the variant composer arranges.
type layout struct {
	variant        Variant
	position       MediaPosition
	stack          MobileStack
	contentGap     string
	textClasses    string
	text           g.Node
	media          g.Node
	mediaContainer string
	mediaSelf      string
	mediaStyle     Style
	shape          g.Node
}

const textStackClass = "relative z-10 flex flex-col gap-6 md:gap-8"

func (l layout) compose() g.Node {
	switch l.variant {
	case VariantFullBleed:
		return l.fullBleed()
	case VariantCard:
		return l.card()
	default:
		return l.split()
	}
}

func (l layout) fullBleed() g.Node {
	return h.Div(
		h.Class("relative mx-auto flex w-full max-w-5xl flex-col gap-8 px-6 py-24 sm:py-32 lg:py-48"),
		h.Div(
			h.Class("relative"),
			l.shape,
			h.Div(class(textStackClass, l.textClasses), l.text),
		),
	)
}

func (l layout) split() g.Node {
	textMobile, mediaMobile := MobileOrder(l.stack)
	textDesktop, mediaDesktop := DesktopOrder(l.position)

	var media g.Node
	if l.media != nil {
		media = h.Div(
			class("relative flex items-center", l.mediaContainer, mediaMobile, mediaDesktop),
			h.Div(class("relative z-10", l.mediaSelf), l.mediaStyle.attr(), l.media),
		)
	}

	return h.Div(
		class("mx-auto flex w-full max-w-6xl flex-col lg:grid lg:grid-cols-2 lg:items-center", l.contentGap),
		h.Div(
			class("relative", textMobile, textDesktop),
			l.shape,
			h.Div(class(textStackClass, l.textClasses, "lg:self-center"), l.text),
		),
		media,
	)
}

func (l layout) card() g.Node {
	textMobile, mediaMobile := MobileOrder(l.stack)

	var media g.Node
	if l.media != nil {
		media = h.Div(
			class("relative z-10 flex items-center", l.mediaContainer, mediaMobile),
			h.Div(class("w-full", l.mediaSelf), l.mediaStyle.attr(), l.media),
		)
	}

	return h.Div(
		h.Class("mx-auto flex w-full max-w-6xl flex-col items-stretch"),
		h.Div(
			class(
				"relative isolate flex w-full flex-col gap-10 rounded-[3rem] bg-white/10 p-8 shadow-xl backdrop-blur-xl",
				CardDirection(l.position),
				"sm:p-10 md:p-14",
				l.contentGap,
			),
			l.shape,
			h.Div(class(textStackClass, l.textClasses, textMobile), l.text),
			media,
		),
	)
}
