/*
   Copyright 2025 The FormVal Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package apis holds the boundary contracts between the core envelope/error
// types and the response-writing adapters.
//
// It contains only interfaces and small serializable view types, so that
// adapters (HTTP, gRPC) and web frameworks can speak about validation state
// and error views without importing each other or the concrete
// implementations.
package apis
