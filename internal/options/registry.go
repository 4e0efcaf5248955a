package options

// Defaults is the full declarative option table. Each pass package
// reads specific names out of a *Set built from this table; no pass
// hardcodes a default itself, so a single registry entry fixes the
// default everywhere.
var Defaults = []Spec{
	{Name: "indent_columns", Kind: KindUInt, Default: UInt(4), Group: "indent", Doc: "columns per indent level"},
	{Name: "indent_with_tabs", Kind: KindUInt, Default: UInt(0), Group: "indent", Doc: "0=spaces; nonzero=line-leading indent with tabs (2 behaves like 1; mid-line alignment stays spaces)"},
	{Name: "indent_namespace", Kind: KindBool, Default: Bool(true), Group: "indent"},
	{Name: "indent_class", Kind: KindBool, Default: Bool(true), Group: "indent"},
	{Name: "indent_switch_case", Kind: KindUInt, Default: UInt(4), Group: "indent"},
	{Name: "indent_continue", Kind: KindUInt, Default: UInt(0), Group: "indent", Doc: "continuation-line offset; 0 means indent_columns"},
	{Name: "indent_label", Kind: KindInt, Default: Int(1), Group: "indent", Doc: ">0: 1-based column for goto labels; <=0: offset from body indent"},
	{Name: "indent_access_spec", Kind: KindInt, Default: Int(1), Group: "indent", Doc: "access-specifier offset from the class brace indent"},

	{Name: "code_width", Kind: KindUInt, Default: UInt(0), Group: "width", Doc: "0 disables the width pass"},
	{Name: "ls_code_width", Kind: KindBool, Default: Bool(false), Group: "width", Doc: "allow break priorities >= 20 (?: and function-open-paren)"},
	{Name: "ls_func_split_full", Kind: KindBool, Default: Bool(false), Group: "width", Doc: "split every parameter onto its own line once a list must break"},

	{Name: "nl_end_of_file", Kind: KindIARF, Default: Arf(Force), Group: "newline"},
	{Name: "nl_fcall_brace", Kind: KindIARF, Default: Arf(Ignore), Group: "newline"},
	{Name: "nl_if_brace", Kind: KindIARF, Default: Arf(Remove), Group: "newline"},
	{Name: "nl_brace_else", Kind: KindIARF, Default: Arf(Remove), Group: "newline"},
	{Name: "nl_else_brace", Kind: KindIARF, Default: Arf(Remove), Group: "newline"},
	{Name: "nl_func_def_args", Kind: KindIARF, Default: Arf(Ignore), Group: "newline"},
	{Name: "nl_func_def_start", Kind: KindIARF, Default: Arf(Ignore), Group: "newline"},
	{Name: "nl_func_def_end", Kind: KindIARF, Default: Arf(Ignore), Group: "newline"},
	{Name: "nl_enum_brace", Kind: KindIARF, Default: Arf(Remove), Group: "newline"},
	{Name: "nl_squeeze_ifdef", Kind: KindBool, Default: Bool(false), Group: "newline"},

	{Name: "nl_max", Kind: KindUInt, Default: UInt(0), Group: "blank_line", Doc: "0 disables the cap"},
	{Name: "nl_before_block_comment", Kind: KindUInt, Default: UInt(0), Group: "blank_line"},
	{Name: "nl_after_func_body", Kind: KindUInt, Default: UInt(2), Group: "blank_line"},
	{Name: "eat_blanks_before_close_brace", Kind: KindBool, Default: Bool(true), Group: "blank_line"},
	{Name: "eat_blanks_after_open_brace", Kind: KindBool, Default: Bool(true), Group: "blank_line"},

	{Name: "mod_full_brace_if", Kind: KindIARF, Default: Arf(Ignore), Group: "braces"},
	{Name: "mod_full_brace_for", Kind: KindIARF, Default: Arf(Ignore), Group: "braces"},
	{Name: "mod_full_brace_while", Kind: KindIARF, Default: Arf(Ignore), Group: "braces"},
	{Name: "mod_full_brace_do", Kind: KindIARF, Default: Arf(Ignore), Group: "braces"},
	{Name: "mod_full_brace_single_line", Kind: KindBool, Default: Bool(true), Group: "braces", Doc: "allow braces added to a single-line body to stay on one line"},
	{Name: "mod_full_brace_nl", Kind: KindUInt, Default: UInt(0), Group: "braces", Doc: "max body newlines for brace removal; 0 = no limit"},
	{Name: "mod_add_long_function_closebrace_comment", Kind: KindUInt, Default: UInt(0), Group: "braces", Doc: "annotate a function close brace spanning more than this many newlines; 0 disables"},
	{Name: "mod_add_long_namespace_closebrace_comment", Kind: KindUInt, Default: UInt(0), Group: "braces", Doc: "annotate a namespace close brace spanning more than this many newlines; 0 disables"},

	{Name: "mod_remove_extra_semicolon", Kind: KindBool, Default: Bool(true), Group: "rewrite"},
	{Name: "mod_remove_empty_return", Kind: KindBool, Default: Bool(false), Group: "rewrite", Doc: "strip a bare 'return;' right before a function's closing brace"},
	{Name: "mod_full_paren_if_bool", Kind: KindBool, Default: Bool(false), Group: "rewrite", Doc: "parenthesize each operand of &&/|| in if/while conditions"},
	{Name: "mod_paren_on_return", Kind: KindIARF, Default: Arf(Ignore), Group: "rewrite"},
	{Name: "mod_sort_import", Kind: KindBool, Default: Bool(false), Group: "rewrite"},
	{Name: "mod_sort_include", Kind: KindBool, Default: Bool(false), Group: "rewrite"},
	{Name: "mod_sort_using", Kind: KindBool, Default: Bool(false), Group: "rewrite"},

	{Name: "sp_arith", Kind: KindIARF, Default: Arf(Add), Group: "space"},
	{Name: "sp_assign", Kind: KindIARF, Default: Arf(Add), Group: "space"},
	{Name: "sp_bool", Kind: KindIARF, Default: Arf(Add), Group: "space"},
	{Name: "sp_compare", Kind: KindIARF, Default: Arf(Add), Group: "space"},
	{Name: "sp_inside_paren", Kind: KindIARF, Default: Arf(Remove), Group: "space"},
	{Name: "sp_paren_paren", Kind: KindIARF, Default: Arf(Remove), Group: "space"},
	{Name: "sp_before_ptr_star", Kind: KindIARF, Default: Arf(Ignore), Group: "space"},
	{Name: "sp_after_ptr_star", Kind: KindIARF, Default: Arf(Remove), Group: "space"},
	{Name: "sp_before_sparen", Kind: KindIARF, Default: Arf(Add), Group: "space"},
	{Name: "sp_after_sparen", Kind: KindIARF, Default: Arf(Add), Group: "space"},
	{Name: "sp_func_call_paren", Kind: KindIARF, Default: Arf(Remove), Group: "space"},
	{Name: "sp_func_def_paren", Kind: KindIARF, Default: Arf(Remove), Group: "space"},
	{Name: "sp_inside_braces", Kind: KindIARF, Default: Arf(Add), Group: "space"},
	{Name: "sp_inside_braces_empty", Kind: KindIARF, Default: Arf(Remove), Group: "space"},

	{Name: "pos_arith", Kind: KindPosition, Default: Pos(PosIgnore), Group: "space"},
	{Name: "pos_assign", Kind: KindPosition, Default: Pos(PosIgnore), Group: "space"},
	{Name: "pos_bool", Kind: KindPosition, Default: Pos(PosIgnore), Group: "space"},

	{Name: "align_var_def_span", Kind: KindUInt, Default: UInt(0), Group: "align", Doc: "0 disables"},
	{Name: "align_assign_span", Kind: KindUInt, Default: UInt(0), Group: "align"},
	{Name: "align_right_cmt_span", Kind: KindUInt, Default: UInt(0), Group: "align"},
	{Name: "align_func_params", Kind: KindBool, Default: Bool(false), Group: "align"},
	{Name: "align_nl_cont", Kind: KindBool, Default: Bool(false), Group: "align", Doc: "align trailing backslash line continuations"},
	{Name: "align_enum_equ_span", Kind: KindUInt, Default: UInt(0), Group: "align", Doc: "align enumerator '=' within span lines"},

	{Name: "utf8_bom", Kind: KindIARF, Default: Arf(Ignore), Group: "output"},
	{Name: "newlines", Kind: KindString, Default: Str("auto"), Group: "output", Doc: "auto|lf|crlf|cr"},

	{Name: "pp_indent", Kind: KindIARF, Default: Arf(Ignore), Group: "preproc"},

	{Name: "pawn_semicolon", Kind: KindBool, Default: Bool(false), Group: "pawn", Doc: "force explicit ';' in Pawn output"},

	{Name: "frag", Kind: KindBool, Default: Bool(false), Group: "input", Doc: "input is an indented fragment; preserve its base indent"},
}

// NewDefaultSet returns a Set populated with every registered option's
// default value, the starting point for the config loader and CLI
// overrides to layer on top of.
func NewDefaultSet() *Set { return NewSet(Defaults) }
