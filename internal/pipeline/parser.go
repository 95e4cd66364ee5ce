package pipeline

import (
	"encoding/json"
	"strings"

	"quizclip/internal/domain"
)

const requiredQuestionCount = 10

// ExtractJSON strips the noise models wrap around JSON despite strict
// prompting: any leading text up to the first '{', every backtick, and
// surrounding whitespace. If the text contains no '{' the result is empty.
func ExtractJSON(text string) string {
	if i := strings.Index(text, "{"); i >= 0 {
		text = text[i:]
	} else {
		text = ""
	}
	text = strings.ReplaceAll(text, "`", "")
	return strings.TrimSpace(text)
}

// ParseQuizPayload decodes and validates raw generation-service output into a
// QuizPayload. Decode failures surface the decoder's message; validation
// failures name the violated constraint. Either way the error is a
// PIPELINE_FAILURE.
func ParseQuizPayload(text string) (*domain.QuizPayload, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &raw); err != nil {
		return nil, domain.NewPipelineFailuref(err, "generation service returned invalid JSON: %v", err)
	}
	return validateQuizPayload(raw)
}

// validateQuizPayload enforces the structural contract in order: required
// keys, exact question count, then per-question constraints. The first
// violation is reported with a distinct message.
func validateQuizPayload(raw interface{}) (*domain.QuizPayload, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, domain.NewPipelineFailure("invalid quiz payload type", nil)
	}

	for _, key := range []string{"title", "description", "questions"} {
		if _, present := obj[key]; !present {
			return nil, domain.NewPipelineFailure("quiz payload missing required keys", nil)
		}
	}

	title, _ := obj["title"].(string)
	description, _ := obj["description"].(string)

	questions, ok := obj["questions"].([]interface{})
	if !ok || len(questions) != requiredQuestionCount {
		return nil, domain.NewPipelineFailuref(nil,
			"quiz payload must contain exactly %d questions", requiredQuestionCount)
	}

	payload := &domain.QuizPayload{
		Title:       title,
		Description: description,
		Questions:   make([]domain.QuestionPayload, 0, requiredQuestionCount),
	}

	for i, entry := range questions {
		question, err := validateQuestion(i, entry)
		if err != nil {
			return nil, err
		}
		payload.Questions = append(payload.Questions, *question)
	}

	return payload, nil
}

func validateQuestion(index int, entry interface{}) (*domain.QuestionPayload, error) {
	obj, ok := entry.(map[string]interface{})
	if !ok {
		return nil, domain.NewPipelineFailuref(nil, "question %d: invalid question payload", index+1)
	}

	title, ok := obj["question_title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return nil, domain.NewPipelineFailuref(nil,
			"question %d: question_title must be a non-empty string", index+1)
	}

	rawOptions, ok := obj["question_options"].([]interface{})
	if !ok || len(rawOptions) != 4 {
		return nil, domain.NewPipelineFailuref(nil,
			"question %d: exactly 4 options are required", index+1)
	}

	options := make([]string, 0, 4)
	distinct := make(map[string]struct{}, 4)
	for _, rawOpt := range rawOptions {
		opt, ok := rawOpt.(string)
		if !ok || strings.TrimSpace(opt) == "" {
			return nil, domain.NewPipelineFailuref(nil,
				"question %d: all options must be non-empty strings", index+1)
		}
		options = append(options, opt)
		distinct[opt] = struct{}{}
	}
	if len(distinct) != 4 {
		return nil, domain.NewPipelineFailuref(nil, "question %d: options must be distinct", index+1)
	}

	answer, ok := obj["answer"].(string)
	if !ok {
		return nil, domain.NewPipelineFailuref(nil,
			"question %d: answer must be one of the options", index+1)
	}
	if _, present := distinct[answer]; !present {
		return nil, domain.NewPipelineFailuref(nil,
			"question %d: answer must be one of the options", index+1)
	}

	return &domain.QuestionPayload{
		QuestionTitle: title,
		Options:       options,
		Answer:        answer,
	}, nil
}
