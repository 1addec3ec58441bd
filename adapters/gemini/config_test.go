package gemini

import "testing"

func TestTextOperationsRunOnProTier(t *testing.T) {
	if chatModel != modelPro {
		t.Errorf("expected chat on %s, got %s", modelPro, chatModel)
	}
	if reasoningModel != modelPro {
		t.Errorf("expected reasoning on %s, got %s", modelPro, reasoningModel)
	}
	if visionModel != modelPro {
		t.Errorf("expected vision on %s, got %s", modelPro, visionModel)
	}
}

func TestSpecializedModelsAreNotProTier(t *testing.T) {
	for name, model := range map[string]string{
		"maps":  modelMaps,
		"live":  modelLive,
		"tts":   modelTTS,
		"image": modelImage,
	} {
		if model == modelPro {
			t.Errorf("expected a specialized model for %s, got the pro tier", name)
		}
	}
}
