package problem

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/llm"
	"github.com/artem13815/prepai/pkg/llmjson"
)

type fakeModel struct {
	reply  string
	err    error
	calls  int
	prompt string
}

func (f *fakeModel) Ask(_ context.Context, _, user string) (string, error) {
	f.calls++
	f.prompt = user
	return f.reply, f.err
}

func (f *fakeModel) Chat(context.Context, string, []llm.Message) (string, error) {
	panic("not used")
}

func TestGenerate_ParsesWrappedReply(t *testing.T) {
	m := &fakeModel{reply: "Sure!\n```json\n" + `{"title":"Two Sum","description":"Find two numbers.","examples":[{"input":"[2,7], 9","output":"[0,1]"}],"boilerplates":{"javascript":"function twoSum(nums, target) {}","python":"def two_sum(nums, target):\n  pass","java":"","cpp":""}}` + "\n```"}
	svc := NewService(m, nil)

	p, err := svc.Generate(context.Background(), "Arrays", "medium")

	require.NoError(t, err)
	assert.Equal(t, "Two Sum", p.Title)
	require.Len(t, p.Examples, 1)
	assert.Equal(t, llmjson.Text("[0,1]"), p.Examples[0].Output)
	assert.Contains(t, p.Boilerplates.JavaScript, "twoSum")
	assert.Contains(t, m.prompt, "Topic: Arrays")
	assert.Contains(t, m.prompt, "Difficulty: Medium")
}

func TestGenerate_Validation(t *testing.T) {
	m := &fakeModel{}
	svc := NewService(m, nil)

	_, err := svc.Generate(context.Background(), " ", "Easy")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Generate(context.Background(), "Graphs", "impossible")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Generate(context.Background(), "Graphs", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	assert.Zero(t, m.calls, "validation happens before any provider call")
}

func TestGenerate_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{"provider error", &fakeModel{err: errors.New("timeout")}},
		{"no json", &fakeModel{reply: "I can't do that"}},
		{"malformed", &fakeModel{reply: `{"title": [}`}},
		{"missing title", &fakeModel{reply: `{"description":"x"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.model, nil).Generate(context.Background(), "Trees", "Hard")

			assert.ErrorIs(t, err, ErrGenerationFailed)
			assert.ErrorIs(t, err, apperr.ErrUpstream)
		})
	}
}

func TestGenerate_NoJSONKeepsCause(t *testing.T) {
	_, err := NewService(&fakeModel{reply: "nothing"}, nil).Generate(context.Background(), "Trees", "Hard")

	assert.ErrorIs(t, err, llmjson.ErrNoJSONFound)
}

func TestGenerate_TolerantJSON(t *testing.T) {
	m := &fakeModel{reply: `{title: 'Zigzag', description: 'Convert s', examples: [],}`}

	p, err := NewService(m, nil).Generate(context.Background(), "Strings", "EASY")

	require.NoError(t, err)
	assert.Equal(t, "Zigzag", p.Title)
	assert.NotNil(t, p.Examples)
}

func TestGenerate_NonStringExampleValues(t *testing.T) {
	m := &fakeModel{reply: `{"title":"Sum","description":"Add a and b.","examples":[
		{"input":"a = 1, b = 2","output":3},
		{"input":[2,7,11,15],"output":true,"explanation":["first","second"]}
	]}`}

	p, err := NewService(m, nil).Generate(context.Background(), "Math", "Easy")

	require.NoError(t, err)
	require.Len(t, p.Examples, 2)
	assert.Equal(t, llmjson.Text("3"), p.Examples[0].Output)
	assert.Equal(t, llmjson.Text("2\n7\n11\n15"), p.Examples[1].Input)
	assert.Equal(t, llmjson.Text("true"), p.Examples[1].Output)
	assert.Equal(t, llmjson.Text("first\nsecond"), p.Examples[1].Explanation)
}

func TestGenerate_WrongShapeIsNotMalformed(t *testing.T) {
	m := &fakeModel{reply: `{"title":"Sum","description":"x","examples":"none"}`}

	_, err := NewService(m, nil).Generate(context.Background(), "Math", "Easy")

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, llmjson.ErrUnexpectedShape)
	assert.NotErrorIs(t, err, llmjson.ErrMalformedResponse)
}
