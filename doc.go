/*
Package boxpaint renders HTML documents styled by CSS into display lists.

The rendering pipeline has three stages:

	DOM + stylesheet ──▶ styled tree ──▶ box tree ──▶ display list
	            css.Resolve       layout.Layout     display.Build

Render runs all three stages. Each stage is total: once a document and a
stylesheet have been parsed, rendering never fails. Parsing is done by
dom.Parse for HTML and by package douceuradapter for CSS.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxpaint
