package parser

import (
	"fmt"

	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// One constructor per message keeps wording consistent and makes the
// tests independent of format strings.

func diagExpectToken(expected, found string, sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error(fmt.Sprintf("Expected `%s` but found `%s`", expected, found), sp).
		WithLabel(sp, fmt.Sprintf("`%s` expected", expected))
}

func diagExpectSemicolon(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Expected a semicolon or an implicit semicolon after a statement, but found none", sp)
}

func diagUnexpectedToken(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Unexpected token", sp)
}

func diagIdentifierExpected(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Identifier expected", sp)
}

func diagNestingTooDeep(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Source exceeds the maximum nesting depth", sp)
}

func diagAwaitReserved(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("The keyword 'await' is reserved", sp)
}

func diagAwaitReservedInModule(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Cannot use 'await' as an identifier in a module", sp)
}

func diagYieldReserved(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("The keyword 'yield' is reserved", sp)
}

func diagYieldOutsideGenerator(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A 'yield' expression is only allowed in a generator body", sp)
}

func diagAwaitOutsideAsync(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("'await' is only allowed within async functions and at the top levels of modules", sp)
}

func diagExpectFunctionName(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Expected a function name", sp).
		WithHelp("Function name is required in function declaration or named export")
}

func diagAsyncFunctionDeclaration(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Async functions can only be declared at the top level or inside a block", sp)
}

func diagGeneratorFunctionDeclaration(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Generators can only be declared at the top level or inside a block", sp)
}

func diagFunctionDeclarationStrict(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("In strict mode code, functions can only be declared at top level or inside a block", sp)
}

func diagImplementationInAmbientContext(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("An implementation cannot be declared in ambient contexts", sp)
}

func diagMissingFunctionBody(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Expected function body", sp)
}

func diagRestParameterLast(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A rest parameter must be last in a parameter list", sp)
}

func diagRestParameterInitializer(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A rest parameter cannot have an initializer", sp)
}

func diagInvalidRestElement(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Invalid rest element", sp)
}

func diagModifierCannotBeUsedHere(name string, sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error(fmt.Sprintf("'%s' modifier cannot be used here", name), sp)
}

func diagModifierAlreadySeen(name string, sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error(fmt.Sprintf("'%s' modifier already seen", name), sp)
}

func diagAccessibilityModifierAlreadySeen(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Accessibility modifier already seen", sp)
}

func diagCannotAppearOnAParameter(name string, sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error(fmt.Sprintf("'%s' modifier cannot appear on a parameter", name), sp)
}

func diagParameterPropertyOutsideConstructor(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A parameter property is only allowed in a constructor implementation", sp)
}

func diagTSSyntaxInJS(what string, sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error(fmt.Sprintf("%s can only be used in TypeScript files", what), sp)
}

func diagInvalidAssignmentTarget(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Invalid assignment target", sp)
}

func diagNewlineAfterArrow(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Line terminator not permitted before arrow", sp)
}

func diagNullishMixedWithLogical(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Logical expressions and coalesce expressions cannot be mixed", sp).
		WithHelp("Wrap either expression by parentheses")
}

func diagOptionalChainTaggedTemplate(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Tagged template expressions are not permitted in an optional chain", sp)
}

func diagSuperOutsideClass(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("'super' can only be referenced in members of derived classes or object literal expressions", sp)
}

func diagNewTargetOutsideFunction(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("new.target is only allowed within function bodies", sp)
}

func diagImportMetaOutsideModule(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Cannot use 'import.meta' outside a module", sp)
}

func diagUnexpectedTrailingComma(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Unexpected trailing comma", sp)
}

func diagConstructorSpecialMethod(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Class constructor cannot be a getter, setter, async method, or generator", sp)
}

func diagStaticPrototype(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Classes may not have a static property named prototype", sp)
}

func diagConstructorClassField(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Classes may not have a field named 'constructor'", sp)
}

func diagGetterParameters(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A 'get' accessor must not have any formal parameters", sp)
}

func diagSetterParameters(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A 'set' accessor must have exactly one parameter", sp)
}

func diagSetterRestParameter(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A 'set' accessor cannot have rest parameter", sp)
}

func diagLexicalDeclarationSingleStatement(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Lexical declaration cannot appear in a single-statement context", sp)
}

func diagMissingInitializerInConst(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Missing initializer in const declaration", sp)
}

func diagMissingInitializerInDestructuring(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Missing initializer in destructuring declaration", sp)
}

func diagLetInLexicalBinding(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("'let' cannot be used as a name in 'let' or 'const' declarations", sp)
}

func diagReturnOutsideFunction(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A 'return' statement can only be used within a function body", sp)
}

func diagIllegalBreak(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Illegal break statement", sp)
}

func diagIllegalContinue(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Illegal continue statement: no surrounding iteration statement", sp)
}

func diagWithInStrictMode(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("'with' statements are not allowed in strict mode", sp)
}

func diagMultipleDefaultClauses(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A 'default' clause cannot appear more than once in a 'switch' statement", sp)
}

func diagNewlineAfterThrow(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Illegal newline after throw", sp)
}

func diagForAwaitNotOf(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("'for await' loops should be used with 'of' statement", sp)
}

func diagForInMultipleBindings(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Only a single declaration is allowed in a for-in or for-of loop", sp)
}

func diagForLoopInitializer(kind string, sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error(fmt.Sprintf("%s loop variable declaration may not have an initializer", kind), sp)
}

func diagImportOutsideModule(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("'import' and 'export' may appear only with 'sourceType: module'", sp)
}

func diagDuplicateDefaultExport(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A module cannot have multiple default exports", sp)
}

func diagInterfaceExtendsClause(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Interface declaration cannot have an 'implements' clause", sp)
}

func diagTypeModifierOnTypeImport(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("The 'type' modifier cannot be used on a named import when 'import type' is used on its import statement", sp)
}

func diagEnumMemberExpected(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Enum member expected", sp)
}

func diagTypeParameterListEmpty(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Type parameter list cannot be empty", sp)
}

func diagTypeArgumentListEmpty(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Type argument list cannot be empty", sp)
}

func diagAbstractMemberInNonAbstractClass(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Abstract methods can only appear within an abstract class", sp)
}

func diagOptionalAndDefinite(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("A binding cannot be both optional and definitely assigned", sp)
}

func diagDefiniteWithInitializer(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Declarations with initializers cannot also have definite assignment assertions", sp)
}

func diagInvalidLabel(name string, sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error(fmt.Sprintf("Use of undeclared label '%s'", name), sp)
}

func diagDuplicateLabel(name string, sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error(fmt.Sprintf("Label '%s' has already been declared", name), sp)
}

func diagUnterminatedRegExp(sp span.Span) diagnostics.Diagnostic {
	return diagnostics.Error("Unterminated regular expression", sp)
}
