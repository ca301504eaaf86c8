package conan

// installOutput is the JSON document printed by "conan install --format json".
type installOutput struct {
	Graph struct {
		Nodes map[string]nodeInfo `json:"nodes"`
	} `json:"graph"`
}

// nodeInfo is one node of the host dependency graph.
type nodeInfo struct {
	Ref           string             `json:"ref"`
	Name          string             `json:"name"`
	Version       string             `json:"version"`
	Context       string             `json:"context"`
	PackageFolder string             `json:"package_folder"`
	Options       map[string]string  `json:"options"`
	CppInfo       map[string]cppInfo `json:"cpp_info"`
}

type cppInfo struct {
	Properties properties `json:"properties"`
}

type properties struct {
	CMakeFileName string `json:"cmake_file_name"`
}
