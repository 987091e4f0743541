package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/rec/pkg/executor"
)

// Device is one audio input as reported by the capture tool.
type Device struct {
	Index int
	Name  string
}

// Characteristics are a device's preferred recording parameters as
// reported by the host audio registry.
type Characteristics struct {
	SampleRate int
	Channels   int
	Default    bool
}

// DefaultCharacteristics is the hardcoded fallback when neither the
// device nor a registry default can be resolved.
var DefaultCharacteristics = Characteristics{SampleRate: 48000, Channels: 1}

// Enumerator discovers input devices and their native formats. Each
// call re-queries the host; nothing is cached.
type Enumerator struct {
	exec executor.Executor
}

// NewEnumerator creates an Enumerator backed by the given executor.
func NewEnumerator(exec executor.Executor) *Enumerator {
	return &Enumerator{exec: exec}
}

// ListInputDevices returns the capture tool's audio input listing in
// order. A missing ffmpeg binary is an error; any other failure yields
// an empty list, which callers treat as "unknown, use defaults".
//
// ffmpeg prints the device table on stderr and exits non-zero because
// no input was given, so this bypasses the executor and captures
// stderr itself.
func (e *Enumerator) ListInputDevices(ctx context.Context) ([]Device, error) {
	cmd := exec.CommandContext(ctx, "ffmpeg", "-f", "avfoundation", "-list_devices", "true", "-i", "")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, ErrFFmpegNotFound
		}
		// Expected: the listing run always "fails".
	}

	return parseDeviceList(stderr.String()), nil
}

var deviceLineRe = regexp.MustCompile(`\[(\d+)\] (.+)$`)

// parseDeviceList extracts the audio section of ffmpeg's avfoundation
// device listing.
func parseDeviceList(out string) []Device {
	var devices []Device
	inAudio := false
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "AVFoundation audio devices:") {
			inAudio = true
			continue
		}
		if !inAudio {
			continue
		}
		if m := deviceLineRe.FindStringSubmatch(line); m != nil {
			idx := 0
			for _, r := range m[1] {
				idx = idx*10 + int(r-'0')
			}
			devices = append(devices, Device{Index: idx, Name: strings.TrimSpace(m[2])})
		} else if !strings.Contains(line, "[AVFoundation") {
			break
		}
	}
	return devices
}

// profilerReport mirrors the parts of `system_profiler SPAudioDataType
// -json` output the enumerator cares about.
type profilerReport struct {
	SPAudioDataType []struct {
		Items []profilerDevice `json:"_items"`
	} `json:"SPAudioDataType"`
}

type profilerDevice struct {
	Name          string  `json:"_name"`
	DefaultInput  string  `json:"coreaudio_default_audio_input_device"`
	InputChannels int     `json:"coreaudio_device_input"`
	SampleRate    float64 `json:"coreaudio_device_srate"`
}

func (d profilerDevice) isDefaultInput() bool {
	return d.DefaultInput == "spaudio_yes"
}

func (d profilerDevice) characteristics() Characteristics {
	c := Characteristics{
		SampleRate: int(d.SampleRate),
		Channels:   d.InputChannels,
		Default:    d.isDefaultInput(),
	}
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultCharacteristics.SampleRate
	}
	if c.Channels <= 0 {
		c.Channels = DefaultCharacteristics.Channels
	}
	return c
}

// Characteristics resolves a device's native sample rate and channel
// count by cross-referencing the capture tool's listing against the
// host audio registry. The two sources name devices differently, so
// matching is by substring containment, not equality. Falls back to
// the registry's default input, then to 48 kHz mono. Never fails.
func (e *Enumerator) Characteristics(ctx context.Context, deviceIndex int) Characteristics {
	devices, err := e.ListInputDevices(ctx)
	if err != nil {
		return DefaultCharacteristics
	}

	var name string
	for _, d := range devices {
		if d.Index == deviceIndex {
			name = d.Name
			break
		}
	}

	out, err := e.exec.Execute(ctx, "system_profiler", "SPAudioDataType", "-json")
	if err != nil {
		return DefaultCharacteristics
	}

	var report profilerReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		return DefaultCharacteristics
	}

	var items []profilerDevice
	for _, group := range report.SPAudioDataType {
		items = append(items, group.Items...)
	}

	return resolveCharacteristics(items, name)
}

// resolveCharacteristics picks the registry entry for name (substring
// containment in either direction, input-capable entries only), then
// the default input entry, then the hardcoded fallback.
func resolveCharacteristics(items []profilerDevice, name string) Characteristics {
	lowered := strings.ToLower(strings.TrimSpace(name))

	if lowered != "" {
		for _, item := range items {
			if item.InputChannels <= 0 {
				continue
			}
			itemName := strings.ToLower(item.Name)
			if strings.Contains(itemName, lowered) || strings.Contains(lowered, itemName) {
				return item.characteristics()
			}
		}
	}

	for _, item := range items {
		if item.isDefaultInput() && item.InputChannels > 0 {
			return item.characteristics()
		}
	}

	return DefaultCharacteristics
}
