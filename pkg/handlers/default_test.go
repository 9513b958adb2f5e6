package handlers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlekit/ruleset/pkg/rules"
)

func TestDefault_FullVocabulary(t *testing.T) {
	ruleSet := compileWith(t, Default(), []interface{}{
		map[string]interface{}{
			"test":    regexp.MustCompile(`\.css$`),
			"exclude": "node_modules/",
			"use": []interface{}{
				"style-loader",
				map[string]interface{}{
					"loader":  "css-loader",
					"options": map[string]interface{}{"modules": true},
				},
			},
		},
		map[string]interface{}{
			"mimetype": "application/json",
			"type":     "json",
		},
		map[string]interface{}{
			"descriptionData": map[string]interface{}{"type": "module"},
			"type":            "javascript/esm",
		},
	})

	css := ruleSet.Exec(rules.Record{"resource": "src/app.css"})
	require.Len(t, css, 2)
	assert.Equal(t, "use", css[0].Kind)
	assert.Equal(t, "style-loader", css[0].Value.(UseEntry).Loader)
	assert.Equal(t, "css-loader", css[1].Value.(UseEntry).Loader)

	excluded := ruleSet.Exec(rules.Record{"resource": "node_modules/lib/a.css"})
	assert.Empty(t, excluded)

	json := ruleSet.Exec(rules.Record{
		"resource": "data:application/json;base64,e30=",
		"mimetype": "application/json",
	})
	assert.Equal(t, []rules.Effect{{Kind: "type", Value: "json"}}, json)

	esm := ruleSet.Exec(rules.Record{
		"resource":        "src/index.js",
		"descriptionData": map[string]interface{}{"type": "module"},
	})
	assert.Equal(t, []rules.Effect{{Kind: "type", Value: "javascript/esm"}}, esm)
}

func TestDefault_OneOfAssetPipeline(t *testing.T) {
	ruleSet := compileWith(t, Default(), []interface{}{
		map[string]interface{}{
			"test": regexp.MustCompile(`\.png$`),
			"oneOf": []interface{}{
				map[string]interface{}{"resourceQuery": "?inline", "type": "asset/inline"},
				map[string]interface{}{"resourceQuery": "?file", "type": "asset/resource"},
				map[string]interface{}{"type": "asset"},
			},
		},
	})

	inline := ruleSet.Exec(rules.Record{"resource": "img/logo.png", "query": "?inline"})
	assert.Equal(t, []rules.Effect{{Kind: "type", Value: "asset/inline"}}, inline)

	file := ruleSet.Exec(rules.Record{"resource": "img/logo.png", "query": "?file"})
	assert.Equal(t, []rules.Effect{{Kind: "type", Value: "asset/resource"}}, file)

	plain := ruleSet.Exec(rules.Record{"resource": "img/logo.png"})
	assert.Equal(t, []rules.Effect{{Kind: "type", Value: "asset"}}, plain)

	notPng := ruleSet.Exec(rules.Record{"resource": "img/logo.svg"})
	assert.Empty(t, notPng)
}

func TestDefault_IssuerAndScheme(t *testing.T) {
	ruleSet := compileWith(t, Default(), []interface{}{
		map[string]interface{}{
			"issuer": "src/styles/",
			"use":    "style-context-loader",
		},
		map[string]interface{}{
			"scheme": "data",
			"type":   "asset/inline",
		},
	})

	fromStyles := ruleSet.Exec(rules.Record{
		"resource": "img/bg.png",
		"issuer":   "src/styles/main.css",
	})
	require.Len(t, fromStyles, 1)
	assert.Equal(t, "style-context-loader", fromStyles[0].Value.(UseEntry).Loader)

	dataURI := ruleSet.Exec(rules.Record{
		"resource": "data:text/plain,hello",
		"scheme":   "data",
	})
	assert.Equal(t, []rules.Effect{{Kind: "type", Value: "asset/inline"}}, dataURI)
}

func TestDefault_UnknownPropertyRejected(t *testing.T) {
	_, err := rules.NewCompiler(Default()...).Compile([]interface{}{
		map[string]interface{}{"test": "a", "looader": "typo-loader"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Properties looader are unknown")
}

func TestDefault_WithImportAttributes(t *testing.T) {
	ruleSet := compileWith(t, Default(), []interface{}{
		map[string]interface{}{
			"with": map[string]interface{}{"type": "json"},
			"type": "json",
		},
	})

	matching := ruleSet.Exec(rules.Record{
		"resource": "config.json",
		"with":     map[string]interface{}{"type": "json"},
	})
	assert.Equal(t, []rules.Effect{{Kind: "type", Value: "json"}}, matching)

	plain := ruleSet.Exec(rules.Record{"resource": "config.json"})
	assert.Empty(t, plain)
}
