package codegen

import (
	"strings"
	"testing"

	"ghost_tester/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func TestRenderStep(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/steps.txtar")
	require.NoError(t, err)

	want := make(map[string]string)
	for _, f := range archive.Files {
		want[f.Name] = strings.TrimSuffix(string(f.Data), "\n")
	}

	cases := map[string]entities.Step{
		"click_visible":  {Accessor: "CC", Action: entities.ActionClick, Wait: entities.WaitVisible},
		"click_force":    {Accessor: "Submit", Action: entities.ActionClick, Wait: entities.WaitNone, Force: true},
		"type_text":      {Accessor: "Email", Action: entities.ActionTypeText, Wait: entities.WaitEnabled, Text: `it's "quoted"`},
		"type_force":     {Accessor: "Email", Action: entities.ActionTypeText, Wait: entities.WaitNone, Force: true, Text: "x"},
		"hover":          {Accessor: "Menu", Action: entities.ActionHover, Wait: entities.WaitNone},
		"scroll":         {Accessor: "Footer", Action: entities.ActionScroll, Wait: entities.WaitExist, Force: true},
		"assert_visible": {Accessor: "Banner", Action: entities.ActionAssertVisible, Wait: entities.WaitVisible},
		"wait_none":      {Accessor: "Spinner", Action: entities.ActionWait, Wait: entities.WaitNone},
		"wait_enabled":   {Accessor: "Spinner", Action: entities.ActionWait, Wait: entities.WaitEnabled},
		"wait_click":     {Accessor: "Save", Action: entities.ActionWaitClick, Wait: entities.WaitVisible},
		"multiple_click": {Accessor: "Rows", Action: entities.ActionClick, Wait: entities.WaitExist, Multiple: true},
	}

	for name, step := range cases {
		t.Run(name, func(t *testing.T) {
			expected, ok := want[name]
			require.True(t, ok, "no golden section %q", name)

			got, err := RenderStep(step)
			require.NoError(t, err)
			if diff := cmp.Diff(expected, got); diff != "" {
				t.Errorf("RenderStep mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderStepErrors(t *testing.T) {
	_, err := RenderStep(entities.Step{Action: entities.ActionClick})
	assert.Error(t, err)

	_, err = RenderStep(entities.Step{Accessor: "X", Action: "drag"})
	assert.ErrorContains(t, err, "unknown action")
}

func TestRenderAccessor(t *testing.T) {
	tests := []struct {
		name string
		loc  entities.Locator
		want string
	}{
		{
			name: "id",
			loc:  entities.Locator{Kind: entities.LocatorID, Value: "cc"},
			want: "// CC locates #cc.\nfunc (p *PageObjects) CC() playwright.Locator {\n\treturn p.page.Locator(\"#cc\")\n}\n",
		},
		{
			name: "text",
			loc:  entities.Locator{Kind: entities.LocatorText, Value: "Sign in"},
			want: "// CC locates text=Sign in.\nfunc (p *PageObjects) CC() playwright.Locator {\n\treturn p.page.GetByText(\"Sign in\")\n}\n",
		},
		{
			name: "multi-line text stays in the comment",
			loc:  entities.Locator{Kind: entities.LocatorText, Value: "x\nvar Y = 1 //"},
			want: "// CC locates text=x var Y = 1 //.\nfunc (p *PageObjects) CC() playwright.Locator {\n\treturn p.page.GetByText(\"x\\nvar Y = 1 //\")\n}\n",
		},
		{
			name: "id needing attribute selector",
			loc:  entities.Locator{Kind: entities.LocatorID, Value: "1st.item"},
			want: "// CC locates [id=\"1st.item\"].\nfunc (p *PageObjects) CC() playwright.Locator {\n\treturn p.page.Locator(\"[id=\\\"1st.item\\\"]\")\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderAccessor("CC", tt.loc))
		})
	}
}
