package hero

// ReadPaths lists every dotted content path the renderer reads. The content
// query must declare each of them.
func ReadPaths() []string {
	paths := []string{
		"_key",
		"variant",
		"minHeight",
		"minHeightCustom",
		"contentSpacing",
		"paddingStrategy",
		"textAlign",
		"invertText",
		"mobileStack",
		"mediaPosition",
		"eyebrow",
		"title",
		"titleStyles.font",
		"titleStyles.size",
		"titleStyles.weight",
		"titleStyles.tracking",
		"titleBodySpacing",
		"body",
		"ctas._key",
		"ctas.label",
		"ctas.href",
		"ctas.style",
		"ctas.ariaLabel",
		"media.type",
		"media.widthMode",
		"media.widthValue",
		"media.maxWidth",
		"media.fit",
		"media.align",
		"background.mode",
		"background.token",
		"background.color",
		"background.overlayOpacity",
		"background.gradient.angle",
		"background.gradient.from",
		"background.gradient.to",
		"shape.enabled",
		"shape.type",
		"shape.radius",
		"shape.padding",
		"shape.shadow",
		"shape.fill",
		"shape.color",
		"shape.token",
	}
	paths = append(paths, imagePaths("media.image")...)
	paths = append(paths, lottiePaths("media.lottie")...)
	paths = append(paths, imagePaths("background.image")...)
	paths = append(paths, imagePaths("shape.image")...)
	paths = append(paths, lottiePaths("shape.lottie")...)
	return paths
}

func imagePaths(prefix string) []string {
	return []string{
		prefix + ".asset._id",
		prefix + ".asset.url",
		prefix + ".asset.metadata.lqip",
		prefix + ".asset.metadata.dimensions.width",
		prefix + ".asset.metadata.dimensions.height",
		prefix + ".hotspot",
		prefix + ".crop",
		prefix + ".alt",
	}
}

func lottiePaths(prefix string) []string {
	return []string{
		prefix + ".file.asset.url",
		prefix + ".autoplay",
		prefix + ".loop",
		prefix + ".speed",
		prefix + ".ariaLabel",
	}
}
