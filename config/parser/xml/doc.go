// Package xml provides an XML parser implementation for the config package.
//
// The package is built on encoding/xml. Paths use the same colon syntax as
// the YAML parser and are matched against element local names below the
// document root:
//
//	<container>
//	  <elcodi_comment>
//	    <comments>
//	      <cache_key>comments</cache_key>
//	    </comments>
//	  </elcodi_comment>
//	</container>
//
// Parsing "elcodi_comment:comments" decodes the <comments> element.
package xml
