package node

// Description is the node metadata a workflow host uses to list the node
// and render its parameter form.
type Description struct {
	DisplayName string               `json:"displayName"`
	Name        string               `json:"name"`
	Icon        string               `json:"icon"`
	Group       []string             `json:"group"`
	Version     int                  `json:"version"`
	Description string               `json:"description"`
	Defaults    map[string]string    `json:"defaults"`
	Inputs      []string             `json:"inputs"`
	Outputs     []string             `json:"outputs"`
	Credentials []CredentialRef      `json:"credentials"`
	Properties  []PropertyDescriptor `json:"properties"`
}

// CredentialRef names a credential type the node requires.
type CredentialRef struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// PropertyDescriptor describes one node parameter.
type PropertyDescriptor struct {
	DisplayName    string               `json:"displayName"`
	Name           string               `json:"name"`
	Type           string               `json:"type"`
	Default        any                  `json:"default"`
	Required       bool                 `json:"required,omitempty"`
	Placeholder    string               `json:"placeholder,omitempty"`
	Description    string               `json:"description,omitempty"`
	Options        []PropertyOption     `json:"options,omitempty"`
	Fields         []PropertyDescriptor `json:"fields,omitempty"`
	DisplayOptions map[string][]string  `json:"displayOptions,omitempty"`
}

// PropertyOption is a selectable value of an options-typed property.
type PropertyOption struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Action      string `json:"action,omitempty"`
}

func friendGridDescription() Description {
	contactCreate := map[string][]string{
		ParamResource:  {ResourceContact},
		ParamOperation: {OperationCreate},
	}
	return Description{
		DisplayName: "FriendGrid",
		Name:        Name,
		Icon:        "file:friendGrid.svg",
		Group:       []string{"transform"},
		Version:     1,
		Description: "Consume SendGrid API",
		Defaults:    map[string]string{"name": "FriendGrid"},
		Inputs:      []string{"main"},
		Outputs:     []string{"main"},
		Credentials: []CredentialRef{{Name: CredentialName, Required: true}},
		Properties: []PropertyDescriptor{
			{
				DisplayName: "Resource",
				Name:        ParamResource,
				Type:        "options",
				Default:     ResourceContact,
				Required:    true,
				Options:     []PropertyOption{{Name: "Contact", Value: ResourceContact}},
			},
			{
				DisplayName: "Operation",
				Name:        ParamOperation,
				Type:        "options",
				Default:     OperationCreate,
				Options: []PropertyOption{{
					Name:        "Create",
					Value:       OperationCreate,
					Description: "Create a contact",
					Action:      "Create a contact",
				}},
				DisplayOptions: map[string][]string{ParamResource: {ResourceContact}},
			},
			{
				DisplayName:    "Email",
				Name:           ParamEmail,
				Type:           "string",
				Default:        "",
				Required:       true,
				Placeholder:    "name@email.com",
				Description:    "Primary email for the contact",
				DisplayOptions: contactCreate,
			},
			{
				DisplayName: "Additional Fields",
				Name:        ParamAdditionalFields,
				Type:        "collection",
				Default:     map[string]any{},
				Placeholder: "Add Field",
				Fields: []PropertyDescriptor{
					{DisplayName: "First Name", Name: "firstName", Type: "string", Default: ""},
					{DisplayName: "Last Name", Name: "lastName", Type: "string", Default: ""},
				},
				DisplayOptions: contactCreate,
			},
		},
	}
}
