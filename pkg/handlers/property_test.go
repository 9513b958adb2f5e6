package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlekit/ruleset/pkg/registry"
	"github.com/bundlekit/ruleset/pkg/rules"
)

func TestPropertyMatchHandler_MatchesOwnAttribute(t *testing.T) {
	stack := []rules.Handler{
		NewPropertyMatchHandler("mimetype", rules.Property("mimetype")),
		NewStaticEffectHandler("type"),
	}
	ruleSet := compileWith(t, stack, []interface{}{
		map[string]interface{}{"mimetype": "application/json", "type": "json"},
	})

	tests := []struct {
		name    string
		rec     rules.Record
		matches bool
	}{
		{"matching mimetype", rules.Record{"mimetype": "application/json"}, true},
		{"prefix semantics", rules.Record{"mimetype": "application/json; charset=utf-8"}, true},
		{"other mimetype", rules.Record{"mimetype": "text/css"}, false},
		{"absent mimetype", rules.Record{"resource": "a.js"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effects := ruleSet.Exec(tt.rec)
			if tt.matches {
				assert.Len(t, effects, 1)
			} else {
				assert.Empty(t, effects)
			}
		})
	}
}

func TestPropertyMatchHandler_KeyRenaming(t *testing.T) {
	// resourceQuery in the rule vocabulary matches the record's query attribute
	stack := []rules.Handler{
		NewPropertyMatchHandler("resourceQuery", rules.Property("query")),
		NewStaticEffectHandler("type"),
	}
	ruleSet := compileWith(t, stack, []interface{}{
		map[string]interface{}{"resourceQuery": "?raw", "type": "asset/source"},
	})

	assert.Len(t, ruleSet.Exec(rules.Record{"query": "?raw"}), 1)
	assert.Empty(t, ruleSet.Exec(rules.Record{"resourceQuery": "?raw"}))
}

func TestPropertyMatchHandler_ErrorPathUsesRuleKey(t *testing.T) {
	stack := []rules.Handler{NewPropertyMatchHandler("issuer", rules.Property("issuer"))}
	_, err := rules.NewCompiler(stack...).Compile([]interface{}{
		map[string]interface{}{"issuer": false},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ruleSet[0].issuer")
}

func TestPropertyMatchHandler_Factory(t *testing.T) {
	factory, err := registry.GetHandlerFactory(PropertyMatchHandlerName)
	require.NoError(t, err)

	tests := []struct {
		name    string
		options map[string]interface{}
		wantErr bool
	}{
		{"key only", map[string]interface{}{"key": "scheme"}, false},
		{"key and property", map[string]interface{}{"key": "resourceQuery", "property": "query"}, false},
		{"missing key", map[string]interface{}{}, true},
		{"non-string key", map[string]interface{}{"key": 7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := factory(tt.options)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &PropertyMatchHandler{}, handler)
		})
	}
}
