// Package io provides JSON import and export for generated seed trees.
//
// # JSON Format
//
// A document is an array holding exactly one root node, with every other
// node nested in its parent's children:
//
//	[
//	  {
//	    "type": "node",
//	    "id": "0b6f4d0e-8f3c-4c1e-9a52-2f0f2a9d7c11",
//	    "parentId": null,
//	    "value": "Root",
//	    "isDeleted": false,
//	    "children": [
//	      {
//	        "type": "node",
//	        "id": "5d1c…",
//	        "parentId": "0b6f4d0e-8f3c-4c1e-9a52-2f0f2a9d7c11",
//	        "value": "Node 9a41c2f0",
//	        "isDeleted": false,
//	        "children": []
//	      }
//	    ]
//	  }
//	]
//
// Output is indented with two spaces per level.
//
// # Export
//
// Use [ExportJSON] to write a tree to a file, or [WriteJSON] to write to any
// io.Writer. [ExportJSON] creates or truncates the destination.
//
// # Import
//
// Use [ImportJSON] or [ReadJSON] to decode a previously written document,
// for example to verify a fixture or to count its nodes with [tree.Count].
package io
