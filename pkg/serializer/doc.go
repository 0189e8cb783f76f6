// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer renders food service values for HTTP clients and the CLI.
//
// Three output formats are supported by Writer:
//   - JSON: indented, machine readable
//   - YAML: human readable
//   - Table: columns for lists of records, FIELD/VALUE pairs for anything else
//
// CLI usage:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatTable, path)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, items); err != nil {
//		return err
//	}
//
// HTTP usage:
//
//	serializer.RespondJSON(w, http.StatusOK, items)
package serializer
