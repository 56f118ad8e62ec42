// Package page coordinates the interactive parts of the presentation site.
//
// An Orchestrator owns one UIState for the lifetime of a page and applies
// notifications from the presentation layer (scroll, resize, key, click,
// pointer and frame ticks) to it. Each field of UIState has exactly one
// writing component:
//
//	ActiveSection            ScrollSpy
//	MobileMenuOpen           Navigator
//	SelectedImage            Lightbox
//	CarouselPaused, Offset   Carousel
//	Background               Crossfader
//	Device                   Classifier
//
// Nothing in this package blocks or starts goroutines. Time only moves when
// the caller invokes Advance with a timestamp, which keeps every loop
// deterministic under test.
package page
