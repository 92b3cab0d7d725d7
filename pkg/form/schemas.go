package form

// Prebuilt schemas for the auth and product forms.

func SignInSchema() Schema {
	return Schema{Rules: []Rule{
		{Field: "email", Kind: KindEmail, Required: true},
		{Field: "password", Kind: KindPassword, Required: true},
		{Field: "rememberMe", Kind: KindBool},
	}}
}

func SignUpSchema() Schema {
	return Schema{Rules: []Rule{
		{Field: "name", Kind: KindName, Required: true},
		{Field: "email", Kind: KindEmail, Required: true},
		{Field: "password", Kind: KindPassword, Required: true},
		{Field: "role", Kind: KindEnum, Required: true, Enum: []string{"farmer", "consumer"}, Message: "Please select a role"},
	}}
}

func ForgotPasswordSchema() Schema {
	return Schema{Rules: []Rule{
		{Field: "email", Kind: KindEmail, Required: true},
	}}
}

func ProductSchema() Schema {
	return Schema{Rules: []Rule{
		{Field: "name", Kind: KindText, Required: true},
		{Field: "description", Kind: KindText, Required: true},
		{Field: "price", Kind: KindPrice, Required: true},
		{Field: "category", Kind: KindText, Required: true},
		{Field: "isOrganic", Kind: KindBool},
		{Field: "image", Kind: KindText},
	}}
}
