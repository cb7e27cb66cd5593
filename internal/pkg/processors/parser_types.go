package processors

import (
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/names"
	"slices"
)

// parseTypeId parses a builtin type, `liste(T)`, a local entity name or `alias::Name`.
func (p *parser) parseTypeId() (parsed.TypeId, error) {
	name, err := p.readIdentifier("Expected a type identifier")
	if err != nil {
		return nil, err
	}

	if name == ast.KwList {
		if err := p.expectChar(ast.SmbParenOpen, "Expected '(' after liste keyword"); err != nil {
			return nil, err
		}
		elem, err := p.parseTypeId()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(ast.SmbParenClose, "Expected ')'"); err != nil {
			return nil, err
		}
		return parsed.NewListTypeId(elem), nil
	}

	if slices.Contains(ast.BuiltinTypes, name) {
		return parsed.NewBuiltinTypeId(name), nil
	}

	if p.tok.IsScope() {
		alias := name
		if !p.module.HasDependency(alias) {
			return nil, p.newError("No module is included under the name << %s >>", alias)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		symbol, err := p.readIdentifier("Expected an identifier after << %s:: >>", alias)
		if err != nil {
			return nil, err
		}
		mangled := names.ForeignType(p.module.ID, alias, symbol)
		if _, ok := p.registry.EntitySignature(p.module, mangled); !ok {
			return nil, p.newError("The type << %s::%s >> doesn't exist !!", alias, symbol)
		}
		return parsed.NewEntityTypeId(p.registry.Canonical(mangled), symbol), nil
	}

	mangled := names.LocalType(p.module.ID, name)
	if _, ok := p.module.EntitySignatures[mangled]; ok || mangled == p.definedEntity {
		return parsed.NewEntityTypeId(mangled, name), nil
	}
	return nil, p.newError("The type << %s >> doesn't exist !!", name)
}
