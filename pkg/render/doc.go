// Package render turns overlay layouts and tab bar scenes into files.
//
// # Sinks
//
//   - [RenderSVG] draws a [Scene]: the tab bar or rail, the dimming
//     background, every shown action item and the accessory button.
//   - [RenderJSON] exports a [layout.Layout] as slot coordinates.
//   - [ToDOT] and [RenderDOT] plot a layout with Graphviz neato, pinning
//     each item at its expanded position.
//   - [RenderPNG] and [RenderPDF] convert the SVG of a scene.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// from librsvg:
//
//	svg := render.RenderSVG(render.FromController(ctl), render.WithGuides())
//	png, err := render.ToPNG(svg, 2.0)
package render
