package homepage

import (
	"context"

	"github.com/openvinotoolkit/genai-site/internal/render"
)

var (
	_ render.Component  = Installation{}
	_ render.CSSLinker  = Installation{}
	_ render.JSEmbedder = Installation{}
	_ render.Component  = CapabilitySection{}
	_ render.CSSLinker  = CapabilitySection{}
)

// InstallChannel is one tab of the Installation section.
type InstallChannel struct {
	ID       string
	Label    string
	Commands []string
	Note     string
}

// Installation lists the ways to install OpenVINO GenAI, one tab per
// channel. The first channel is selected.
type Installation struct {
	ID          string
	Title       string
	Description string
	Channels    []InstallChannel

	stylesheet render.CSSLink
}

// NewInstallation returns the Installation section.
func NewInstallation(site *Site) (Installation, error) {
	stylesheet, err := site.moduleStylesheet("installation")
	if err != nil {
		return Installation{}, err
	}
	return Installation{
		ID:          "installation",
		Title:       "Install OpenVINO™ GenAI",
		Description: "Pick the distribution that fits your project.",
		Channels: []InstallChannel{
			{
				ID:       "pypi",
				Label:    "PyPI",
				Commands: []string{"python -m pip install openvino-genai"},
			},
			{
				ID:       "conda",
				Label:    "Conda",
				Commands: []string{"conda install -c conda-forge openvino openvino-genai"},
			},
			{
				ID:    "archive",
				Label: "Archive",
				Commands: []string{
					"curl -L https://storage.openvinotoolkit.org/repositories/openvino_genai/packages/ --output openvino_genai.tgz",
					"tar -xf openvino_genai.tgz",
					"source openvino_genai/setupvars.sh",
				},
				Note: "Archives include the C++ and C APIs along with the Python bindings.",
			},
		},
		stylesheet: stylesheet,
	}, nil
}

func (Installation) Templates(_ context.Context) []string {
	return []string{"installation.html.tmpl"}
}

func (i Installation) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{i.stylesheet}
}

func (Installation) EmbedJS(_ context.Context) []render.JSInline {
	return []render.JSInline{
		{TemplatePath: "installation.js.tmpl", PlaceInFooter: true},
	}
}

// CodeSample is the snippet shown next to a CapabilitySection.
type CodeSample struct {
	Language string
	Code     string
}

// CapabilitySection presents one kind of pipeline: what it does, a few
// highlights and a short code sample.
type CapabilitySection struct {
	ID          string
	Title       string
	Description string
	Highlights  []string
	Sample      CodeSample
	DocsHref    string

	stylesheet render.CSSLink
}

func (CapabilitySection) Templates(_ context.Context) []string {
	return []string{"capability-section.html.tmpl"}
}

func (c CapabilitySection) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{c.stylesheet}
}

func newCapabilitySection(site *Site, section CapabilitySection) (CapabilitySection, error) {
	stylesheet, err := site.moduleStylesheet("section")
	if err != nil {
		return CapabilitySection{}, err
	}
	section.stylesheet = stylesheet
	section.DocsHref = site.URL(section.DocsHref)
	return section, nil
}

// NewTextGeneration returns the text generation section.
func NewTextGeneration(site *Site) (CapabilitySection, error) {
	return newCapabilitySection(site, CapabilitySection{
		ID:          "text-generation",
		Title:       "Text Generation API",
		Description: "Run large language models for chat, completion and question answering with a single pipeline.",
		Highlights: []string{
			"Greedy, beam search and multinomial sampling",
			"Streaming of generated tokens",
			"Speculative decoding and prompt lookup",
		},
		Sample: CodeSample{
			Language: "python",
			Code: `import openvino_genai as ov_genai

pipe = ov_genai.LLMPipeline("TinyLlama-1.1B-Chat-v1.0", "CPU")
print(pipe.generate("What is OpenVINO?", max_new_tokens=100))`,
		},
		DocsHref: "docs/use-cases/text-generation",
	})
}

// NewImageGeneration returns the image generation section.
func NewImageGeneration(site *Site) (CapabilitySection, error) {
	return newCapabilitySection(site, CapabilitySection{
		ID:          "image-generation",
		Title:       "Image Generation API",
		Description: "Create images from text prompts with diffusion models, or edit existing images with inpainting.",
		Highlights: []string{
			"Text to image, image to image and inpainting",
			"Stable Diffusion, LCM and Flux model families",
			"LoRA adapters switchable at runtime",
		},
		Sample: CodeSample{
			Language: "python",
			Code: `import openvino_genai as ov_genai
from PIL import Image

pipe = ov_genai.Text2ImagePipeline("stable-diffusion-v1-5", "CPU")
image_tensor = pipe.generate("a cat wearing a hat", width=512, height=512)
Image.fromarray(image_tensor.data[0]).save("image.bmp")`,
		},
		DocsHref: "docs/use-cases/image-generation",
	})
}

// NewSpeechToText returns the speech recognition section.
func NewSpeechToText(site *Site) (CapabilitySection, error) {
	return newCapabilitySection(site, CapabilitySection{
		ID:          "speech-to-text",
		Title:       "Speech Recognition API",
		Description: "Transcribe and translate speech with Whisper models.",
		Highlights: []string{
			"Transcription and translation to English",
			"Word and segment timestamps",
			"Long-form audio",
		},
		Sample: CodeSample{
			Language: "python",
			Code: `import librosa
import openvino_genai as ov_genai

raw_speech, _ = librosa.load("sample.wav", sr=16000)
pipe = ov_genai.WhisperPipeline("whisper-base", "CPU")
print(pipe.generate(raw_speech.tolist()))`,
		},
		DocsHref: "docs/use-cases/speech-recognition",
	})
}

// NewImageProcessing returns the visual language section.
func NewImageProcessing(site *Site) (CapabilitySection, error) {
	return newCapabilitySection(site, CapabilitySection{
		ID:          "image-processing",
		Title:       "Image Processing with Visual Language Models",
		Description: "Ask questions about images and hold conversations that mix pictures and text.",
		Highlights: []string{
			"Image description and visual question answering",
			"Multiple images per prompt",
			"Chat mode with history",
		},
		Sample: CodeSample{
			Language: "python",
			Code: `import numpy as np
import openvino as ov
import openvino_genai as ov_genai
from PIL import Image

pipe = ov_genai.VLMPipeline("MiniCPM-V-2_6", "CPU")
image = ov.Tensor(np.array(Image.open("cat.png"))[None])
print(pipe.generate("Describe the image", image=image, max_new_tokens=100))`,
		},
		DocsHref: "docs/use-cases/image-processing",
	})
}
