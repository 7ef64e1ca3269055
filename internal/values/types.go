// Package values models the golden-chart Helm values file. The chart
// uses a map-based configuration: each resource type is a map whose
// key becomes part of the rendered resource name.
package values

// Values is the root of a values.yaml document.
type Values struct {
	NameOverride      string              `json:"nameOverride,omitempty"`
	FullnameOverride  string              `json:"fullnameOverride,omitempty"`
	NamespaceOverride string              `json:"namespaceOverride,omitempty"`
	ImagePullSecrets  []map[string]string `json:"imagePullSecrets,omitempty"`

	Global   *Global        `json:"global,omitempty"`
	Defaults map[string]any `json:"defaults,omitempty"`

	Deployments              map[string]Deployment  `json:"deployments,omitempty"`
	Services                 map[string]Service     `json:"services,omitempty"`
	ConfigMaps               map[string]ConfigMap   `json:"configMaps,omitempty"`
	Secrets                  map[string]Secret      `json:"secrets,omitempty"`
	PersistentVolumeClaims   map[string]VolumeClaim `json:"persistentVolumeClaims,omitempty"`
	HorizontalPodAutoscalers map[string]Autoscaler  `json:"horizontalPodAutoscalers,omitempty"`
	CronJobs                 map[string]CronJob     `json:"cronjobs,omitempty"`
	Hooks                    map[string]Hook        `json:"hooks,omitempty"`

	Istio          *Istio          `json:"istio,omitempty"`
	ServiceAccount *ServiceAccount `json:"serviceAccount,omitempty"`

	ExtraResources []map[string]any `json:"extraResources,omitempty"`
}

// Global holds labels and annotations applied to every resource.
type Global struct {
	Labels      map[string]string `json:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

type Image struct {
	Repository string `json:"repository"`
	Tag        string `json:"tag,omitempty"`
	PullPolicy string `json:"pullPolicy,omitempty"`
}

type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type Resources struct {
	Requests map[string]string `json:"requests,omitempty"`
	Limits   map[string]string `json:"limits,omitempty"`
}

type ContainerPort struct {
	Name          string `json:"name,omitempty"`
	ContainerPort int32  `json:"containerPort"`
	Protocol      string `json:"protocol,omitempty"`
}

type Deployment struct {
	Image       *Image            `json:"image,omitempty"`
	Replicas    *int32            `json:"replicas,omitempty"`
	Command     []string          `json:"command,omitempty"`
	Args        []string          `json:"args,omitempty"`
	Env         []EnvVar          `json:"env,omitempty"`
	Ports       []ContainerPort   `json:"ports,omitempty"`
	Resources   *Resources        `json:"resources,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

type ServicePort struct {
	Name       string `json:"name,omitempty"`
	Port       int32  `json:"port"`
	TargetPort any    `json:"targetPort,omitempty"`
	Protocol   string `json:"protocol,omitempty"`
}

type Service struct {
	Type             string        `json:"type,omitempty"`
	TargetDeployment string        `json:"targetDeployment,omitempty"`
	Ports            []ServicePort `json:"ports,omitempty"`
}

type ConfigMap struct {
	Data map[string]string `json:"data,omitempty"`
}

type Secret struct {
	Type       string            `json:"type,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
	StringData map[string]string `json:"stringData,omitempty"`
}

type VolumeClaim struct {
	Size             string   `json:"size"`
	StorageClassName string   `json:"storageClassName,omitempty"`
	AccessModes      []string `json:"accessModes,omitempty"`
}

type Autoscaler struct {
	TargetDeployment               string `json:"targetDeployment"`
	MinReplicas                    *int32 `json:"minReplicas,omitempty"`
	MaxReplicas                    int32  `json:"maxReplicas"`
	TargetCPUUtilizationPercentage *int32 `json:"targetCPUUtilizationPercentage,omitempty"`
}

type CronJob struct {
	Schedule                   string     `json:"schedule"`
	Image                      *Image     `json:"image,omitempty"`
	Command                    []string   `json:"command,omitempty"`
	Args                       []string   `json:"args,omitempty"`
	Env                        []EnvVar   `json:"env,omitempty"`
	Resources                  *Resources `json:"resources,omitempty"`
	Suspend                    *bool      `json:"suspend,omitempty"`
	ConcurrencyPolicy          string     `json:"concurrencyPolicy,omitempty"`
	SuccessfulJobsHistoryLimit *int32     `json:"successfulJobsHistoryLimit,omitempty"`
	FailedJobsHistoryLimit     *int32     `json:"failedJobsHistoryLimit,omitempty"`
}

// Hook is a Helm lifecycle job (migrations, cache warming, ...).
type Hook struct {
	Hook         string   `json:"hook"`
	HookWeight   *int32   `json:"hookWeight,omitempty"`
	Image        *Image   `json:"image,omitempty"`
	Command      []string `json:"command,omitempty"`
	Args         []string `json:"args,omitempty"`
	Env          []EnvVar `json:"env,omitempty"`
	BackoffLimit *int32   `json:"backoffLimit,omitempty"`
}

type IstioGateway struct {
	Selector map[string]string `json:"selector,omitempty"`
	Servers  []map[string]any  `json:"servers,omitempty"`
}

type IstioVirtualService struct {
	Hosts    []string         `json:"hosts,omitempty"`
	Gateways []string         `json:"gateways,omitempty"`
	HTTP     []map[string]any `json:"http,omitempty"`
	TCP      []map[string]any `json:"tcp,omitempty"`
}

type IstioDestinationRule struct {
	Host          string           `json:"host"`
	TrafficPolicy map[string]any   `json:"trafficPolicy,omitempty"`
	Subsets       []map[string]any `json:"subsets,omitempty"`
}

// Istio gates rendering of the networking.istio.io resources.
type Istio struct {
	Enabled          bool                            `json:"enabled"`
	Gateways         map[string]IstioGateway         `json:"gateways,omitempty"`
	VirtualServices  map[string]IstioVirtualService  `json:"virtualServices,omitempty"`
	DestinationRules map[string]IstioDestinationRule `json:"destinationRules,omitempty"`
}

type ServiceAccount struct {
	Create                       *bool             `json:"create,omitempty"`
	Name                         string            `json:"name,omitempty"`
	Annotations                  map[string]string `json:"annotations,omitempty"`
	AutomountServiceAccountToken *bool             `json:"automountServiceAccountToken,omitempty"`
}
