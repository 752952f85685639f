package xgxexception_test

import (
	"fmt"

	xgxexception "github.com/xgx-io/xgx-exception"
	"github.com/xgx-io/xgx-exception/typetag"
)

func ExampleNestAt() {
	open := xgxexception.Site{File: "/build/src/config/open.go", Function: "config.open", Line: 31}
	load := xgxexception.Site{File: "/build/src/config/load.go", Function: "config.Load", Line: 12}

	root := xgxexception.NewTypedAt(typetag.FileNotFound, open, "settings.toml")
	e := xgxexception.NestAt(root, load, "cannot load settings")

	fmt.Println(root.IsValid())
	fmt.Printf("%+v\n", e)
	// Output:
	// false
	// Standard: cannot load settings in config.Load ['.../config/load.go' : 12]
	// >FileNotFound: settings.toml in config.open ['.../config/open.go' : 31]
}

func ExampleException_Nested() {
	s := xgxexception.Site{File: "a/b.go", Function: "b.F", Line: 1}
	e := xgxexception.NewAt(s, "c")
	e = xgxexception.NestAt(e, s, "b")
	e = xgxexception.NestAt(e, s, "a")

	for cur := e; cur != nil; cur = cur.Nested() {
		fmt.Println(cur.Message())
	}
	// Output:
	// a
	// b
	// c
}
