package generation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultDisplay(t *testing.T) {
	ok := Ok("resume text")
	assert.True(t, ok.OK())
	assert.Nil(t, ok.Failure())
	assert.Equal(t, "resume text", ok.Display())

	cause := errors.New("boom")
	failed := Fail[string](&Failure{Kind: KindGenerationFailed, Message: "An error occurred: boom", Err: cause})
	assert.False(t, failed.OK())
	v, isOK := failed.Value()
	assert.False(t, isOK)
	assert.Empty(t, v)
	assert.Equal(t, "An error occurred: boom", failed.Display())
	assert.True(t, errors.Is(failed.Failure(), cause))
	assert.Equal(t, "generation_failed: boom", failed.Failure().Error())
}

func TestDocumentRefDisplaysKey(t *testing.T) {
	r := Ok(DocumentRef{Key: "Generated_Resume.docx"})
	assert.Equal(t, "Generated_Resume.docx", r.Display())
}
