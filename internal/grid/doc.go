/*
Package grid decodes input files into call-graph values for the builder.

Two formats are supported, chosen by file extension. A .json file holds one
raw call graph, the single-entry object {operationName: argumentsObject},
and decodes to a single formula named "main". A .hcl file holds one or more
named formula blocks:

	formula "positive_integer" {
	  expr = {
	    logical_and = {
	      indicators = [
	        { is_integer = { a = "n" } },
	        { bigger_than = { a = "n", b = 0 } },
	      ]
	    }
	  }
	}

Either way the decoded shape is a generic cty.Value tree; interpreting it is
entirely the builder's job. Decoding performs no registry lookups.
*/
package grid
