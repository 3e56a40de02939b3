package markup

// Lower-case productions are lexical. Letters, digits and whitespace are
// approximated by their ASCII ranges; the parser accepts any Unicode letter,
// number or space in their place.
const grammarEBNF = `Element = [ ws ] ( SingleElement | ParentElement ) [ ws ] .
SingleElement = ElementStart "/>" .
ParentElement = OpenElement { Element } CloseElement .
OpenElement = ElementStart ">" .
CloseElement = "</" identifier ">" .
ElementStart = "<" identifier { ws Attribute } .
Attribute = identifier "=" quoted .
identifier = letter { letter | digit | "-" } .
quoted = "\"" { char } "\"" .
char = "\x00" … "!" | "#" … "\U0010FFFF" .
letter = "a" … "z" | "A" … "Z" .
digit = "0" … "9" .
ws = space { space } .
space = " " | "\t" | "\n" | "\r" .`
