// Package typefile reads custom type tables from YAML or JSON documents and
// registers them with an engine.
//
// A document lists types under a top-level "types" key. A string value is an
// alias; a mapping is a shape whose fields hold nested contracts:
//
//	types:
//	  Id: string|number
//	  Point:
//	    x: number
//	    y: number
//	  Segment:
//	    from: Point
//	    to: Point
//	    label: string=
//
// Usage:
//
//	defs, err := typefile.Load("contracts.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := typefile.Register(bycontract.Default(), defs); err != nil {
//	    return err
//	}
//
// Types are registered in name order so repeated loads produce identical
// registries and deterministic errors.
package typefile
