package reqinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsAjax(t *testing.T) {
	assert := assert.New(t)
	assert.False(New(Env{}).IsAjax())

	for value, expected := range map[string]bool{
		"XMLHttpRequest": true,
		"xmlhttprequest": false,
		"XMLHttpRequest ": false,
		"":               false,
		"fetch":          false,
	} {
		request := New(NewEnv(map[string]string{KeyRequestedWith: value}))
		assert.Equal(expected, request.IsAjax(), "header %q", value)
	}
}

func TestEnvironment(t *testing.T) {
	assert := assert.New(t)

	request := New(NewEnv(map[string]string{DefaultEnvironmentKey: "dev"}))
	assert.True(request.IsEnvDev())
	assert.False(request.IsEnvProd())

	request = New(NewEnv(map[string]string{DefaultEnvironmentKey: "prod"}))
	assert.False(request.IsEnvDev())
	assert.True(request.IsEnvProd())

	for _, other := range []string{"", "Dev", "PROD", " dev", "prod\n", "staging"} {
		request = New(NewEnv(map[string]string{DefaultEnvironmentKey: other}))
		assert.False(request.IsEnvDev(), "value %q", other)
		assert.False(request.IsEnvProd(), "value %q", other)
	}

	request = New(Env{})
	assert.False(request.IsEnvDev())
	assert.False(request.IsEnvProd())
}

func TestEnvironment_CustomKey(t *testing.T) {
	assert := assert.New(t)
	env := NewEnv(map[string]string{
		DefaultEnvironmentKey: "prod",
		"APP_ENV":             "dev",
	})

	request := New(env, WithEnvironmentKey("APP_ENV"))
	assert.True(request.IsEnvDev())
	assert.False(request.IsEnvProd())

	request = New(env, WithEnvironmentKey(""))
	assert.True(request.IsEnvProd())
}

func TestRequest_Logging(t *testing.T) {
	assert := assert.New(t)
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	_, err := New(Env{}, WithLogger(log)).RequestURI()
	assert.Error(err)
	assert.Equal(1, logs.FilterMessage("request target is missing").Len())

	_, err = New(NewEnv(map[string]string{KeyRequestURI: "http://host/x"}), WithLogger(log)).RequestURI()
	assert.NoError(err)
	stripped := logs.FilterMessage("stripped absolute-form request target").All()
	if assert.Len(stripped, 1) {
		assert.Equal("/x", stripped[0].ContextMap()["relative"])
	}
}

func TestRequest_Env(t *testing.T) {
	env := NewEnv(map[string]string{KeyRequestMethod: "GET"})
	assert.Equal(t, env, New(env).Env())
}

func TestRequest_LogsOnlyAtDebug(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	_, err := New(Env{}, WithLogger(log)).RequestURI()
	assert.Error(t, err)
	_, err = New(NewEnv(map[string]string{KeyRequestURI: "http://host/x"}), WithLogger(log)).RequestURI()
	assert.NoError(t, err)
	assert.Equal(t, 0, logs.Len())
}
