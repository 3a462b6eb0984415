package ast

import "github.com/fieldbook/intrusive/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	VariableDeclaration struct {
		List VariableDeclarators

		Idx   Idx
		Token token.Token // Var, Let or Const
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *Identifier
		Initializer *Expression `optional:"true"`
	}
)
