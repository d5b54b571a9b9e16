// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


package noreturn

import "go/types"

// FuncName identifies a function or method independent of its type information.
type FuncName struct {
	Path     string // package path, empty for universe and interface methods
	Receiver string // receiver type name without pointer, empty for functions
	Name     string
}

func (f FuncName) String() string {
	switch {
	case f.Receiver != "" && f.Path != "":
		return "(" + f.Path + "." + f.Receiver + ")." + f.Name

	case f.Receiver != "":
		return "(" + f.Receiver + ")." + f.Name

	case f.Path != "":
		return f.Path + "." + f.Name

	default:
		return f.Name
	}
}

// FuncNameOf returns the [FuncName] of fun.
// Pointer receivers and aliases resolve to the named type.
func FuncNameOf(fun *types.Func) FuncName {
	sig, _ := fun.Type().(*types.Signature)
	if sig == nil || sig.Recv() == nil {
		return FuncName{Path: pkgPath(fun.Pkg()), Name: fun.Name()}
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch t := recv.(type) {
	case *types.Named:
		obj := t.Obj()

		return FuncName{Path: pkgPath(obj.Pkg()), Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

func pkgPath(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return pkg.Path()
}
