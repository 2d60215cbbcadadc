package stubc

import (
	"go/types"

	"github.com/dave/jennifer/jen"
)

// typeCode renders t the way it is spelled in the generated file. Packages
// are imported and aliased by jen.
func typeCode(t types.Type) *jen.Statement {
	switch t := t.(type) {
	case *types.Basic:
		if t.Kind() == types.UnsafePointer {
			return jen.Qual("unsafe", "Pointer")
		}

		return jen.Id(t.Name())
	case *types.Pointer:
		return jen.Op("*").Add(typeCode(t.Elem()))
	case *types.Slice:
		return jen.Index().Add(typeCode(t.Elem()))
	case *types.Array:
		return jen.Index(jen.Lit(int(t.Len()))).Add(typeCode(t.Elem()))
	case *types.Map:
		return jen.Map(typeCode(t.Key())).Add(typeCode(t.Elem()))
	case *types.Chan:
		switch t.Dir() {
		case types.SendRecv:
			return jen.Chan().Add(typeCode(t.Elem()))
		case types.RecvOnly:
			return jen.Op("<-").Chan().Add(typeCode(t.Elem()))
		default:
			return jen.Chan().Op("<-").Add(typeCode(t.Elem()))
		}
	case *types.Struct:
		fields := make([]jen.Code, 0, t.NumFields())
		for i := 0; i < t.NumFields(); i++ {
			f := t.Field(i)

			var field *jen.Statement
			if f.Embedded() {
				field = typeCode(f.Type())
			} else {
				field = jen.Id(f.Name()).Add(typeCode(f.Type()))
			}
			if tag := t.Tag(i); tag != "" {
				field.Lit(tag)
			}

			fields = append(fields, field)
		}

		return jen.Struct(fields...)
	case *types.Named:
		return objectCode(t.Obj(), t.TypeArgs())
	case *types.Alias:
		return objectCode(t.Obj(), t.TypeArgs())
	case *types.TypeParam:
		return jen.Id(t.Obj().Name())
	case *types.Signature:
		return jen.Func().Add(signatureCode(t))
	case *types.Interface:
		methods := make([]jen.Code, 0, t.NumMethods())
		for i := 0; i < t.NumMethods(); i++ {
			method := t.Method(i)
			methods = append(methods, jen.Id(method.Name()).Add(signatureCode(method.Type().(*types.Signature))))
		}

		return jen.Interface(methods...)
	default:
		return jen.Id(t.String())
	}
}

func objectCode(obj *types.TypeName, args *types.TypeList) *jen.Statement {
	var code *jen.Statement
	if obj.Pkg() == nil {
		code = jen.Id(obj.Name())
	} else {
		code = jen.Qual(obj.Pkg().Path(), obj.Name())
	}

	if args.Len() == 0 {
		return code
	}

	list := make([]jen.Code, 0, args.Len())
	for i := 0; i < args.Len(); i++ {
		list = append(list, typeCode(args.At(i)))
	}

	return code.Index(jen.List(list...))
}

// signatureCode renders the parameter and result lists of sig, without the
// func keyword.
func signatureCode(sig *types.Signature) *jen.Statement {
	params := tupleCode(sig.Params(), sig.Variadic())

	switch sig.Results().Len() {
	case 0:
		return jen.Params(params...)
	case 1:
		return jen.Params(params...).Add(typeCode(sig.Results().At(0).Type()))
	default:
		return jen.Params(params...).Params(tupleCode(sig.Results(), false)...)
	}
}

func tupleCode(t *types.Tuple, variadic bool) []jen.Code {
	codes := make([]jen.Code, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		typ := t.At(i).Type()
		if variadic && i == t.Len()-1 {
			codes = append(codes, jen.Op("...").Add(typeCode(typ.(*types.Slice).Elem())))
			continue
		}

		codes = append(codes, typeCode(typ))
	}

	return codes
}
