/*
Package styledtree is a straightforward implementation of a styled document
tree.

Overview

Every styled node mirrors one DOM node. It references the html.Node (for tag,
attributes and text) and owns a map from property name to the single
winning value of the cascade. Children are kept in DOM order.
Styled trees are built once by the style resolver (package css) and are
read-only afterwards.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree
