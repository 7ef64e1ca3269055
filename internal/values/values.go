package values

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Load parses a values.yaml file into the typed model. Unknown keys
// are tolerated (the chart allows extra values for template authors).
func Load(path string) (*Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}
	v := &Values{}
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("failed to parse values file %s: %w", path, err)
	}
	return v, nil
}

// Validate checks the structural rules the chart templates rely on.
// It reports the first violation found.
func (v *Values) Validate() error {
	for name, d := range v.Deployments {
		if d.Image == nil || d.Image.Repository == "" {
			return fmt.Errorf("deployments.%s: image.repository is required", name)
		}
	}
	for name, s := range v.Services {
		if len(s.Ports) == 0 {
			return fmt.Errorf("services.%s: at least one port is required", name)
		}
	}
	for name, c := range v.CronJobs {
		if c.Schedule == "" {
			return fmt.Errorf("cronjobs.%s: schedule is required", name)
		}
	}
	for name, h := range v.HorizontalPodAutoscalers {
		if h.TargetDeployment == "" {
			return fmt.Errorf("horizontalPodAutoscalers.%s: targetDeployment is required", name)
		}
		if h.MaxReplicas <= 0 {
			return fmt.Errorf("horizontalPodAutoscalers.%s: maxReplicas must be positive", name)
		}
	}
	for name, h := range v.Hooks {
		if h.Hook == "" {
			return fmt.Errorf("hooks.%s: hook is required", name)
		}
	}
	for name, p := range v.PersistentVolumeClaims {
		if p.Size == "" {
			return fmt.Errorf("persistentVolumeClaims.%s: size is required", name)
		}
	}
	if v.Istio != nil && v.Istio.Enabled {
		for name, dr := range v.Istio.DestinationRules {
			if dr.Host == "" {
				return fmt.Errorf("istio.destinationRules.%s: host is required", name)
			}
		}
	}
	return nil
}

// Summary returns the human-readable resource counts the validator
// prints after a successful run. Only populated sections appear.
func (v *Values) Summary() []string {
	var lines []string
	add := func(label string, n int) {
		if n > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d", label, n))
		}
	}
	add("Deployments", len(v.Deployments))
	add("Services", len(v.Services))
	add("ConfigMaps", len(v.ConfigMaps))
	add("Secrets", len(v.Secrets))
	add("PersistentVolumeClaims", len(v.PersistentVolumeClaims))
	add("CronJobs", len(v.CronJobs))
	add("HPAs", len(v.HorizontalPodAutoscalers))
	add("Hooks", len(v.Hooks))

	if v.Istio != nil && v.Istio.Enabled {
		lines = append(lines, "Istio enabled: yes")
		add("  Gateways", len(v.Istio.Gateways))
		add("  VirtualServices", len(v.Istio.VirtualServices))
		add("  DestinationRules", len(v.Istio.DestinationRules))
	}
	return lines
}
